// Package catalog holds the static taxonomy datasets served by the
// browsing surfaces: flavor categories, drink ingredients and individual
// flavors. Item names are the canonical favorite labels.
package catalog

import "coffeinimals/internal/models"

// Taxonomy names accepted by the catalog API.
const (
	TaxonomyCategories  = "categories"
	TaxonomyIngredients = "ingredients"
	TaxonomyFlavors     = "flavors"
)

// Categories are the eight flavor families shown on the categories tab.
func Categories() []models.CatalogItem {
	return []models.CatalogItem{
		{Name: "🍓 Fruity", Description: "Bright and refreshing flavors inspired by fruits like berries, citrus, and tropical fruits. They add sweetness and tanginess to coffee."},
		{Name: "🌰 Nutty", Description: "Warm, earthy notes resembling nuts such as hazelnut, almond, and pecan. Often found in flavored lattes and mochas."},
		{Name: "🌸 Floral", Description: "Delicate, aromatic flavors such as rose, jasmine, and lavender. These bring a fragrant and sophisticated touch."},
		{Name: "🍫 Chocolatey", Description: "Rich cocoa flavors ranging from sweet milk chocolate to intense dark chocolate. Perfect for mochas and dessert coffees."},
		{Name: "🧑‍🍳 Spiced", Description: "Bold and warming flavors from spices like cinnamon, cardamom, nutmeg, and ginger. Popular in chai lattes and seasonal drinks."},
		{Name: "🍮 Creamy", Description: "Smooth and indulgent flavors such as vanilla, caramel, and Irish cream. They add sweetness and richness to beverages."},
		{Name: "🥥 Exotic", Description: "Unique flavors like coconut, taro, and matcha. These create adventurous and exciting coffee experiences."},
		{Name: "☕ Classic", Description: "Timeless and familiar flavors like plain espresso, milk, and sugar. They highlight the pure taste of coffee itself."},
	}
}

// Ingredients are the items shown on the ingredients tab.
func Ingredients() []models.CatalogItem {
	return []models.CatalogItem{
		{Name: "Arabica Beans", Description: "High-quality coffee beans with a smooth, mild flavor and lower caffeine content."},
		{Name: "Robusta Beans", Description: "Stronger, more bitter beans with higher caffeine, often used in espresso blends."},
		{Name: "Liberica Beans", Description: "Rare beans with a woody, smoky flavor profile."},
		{Name: "Excelsa Beans", Description: "Fruity and tart beans, often used to add depth to blends."},
		{Name: "Espresso", Description: "Concentrated coffee brewed under pressure, forming the base of many drinks."},
		{Name: "Milk", Description: "Adds creaminess and sweetness to coffee drinks like lattes and cappuccinos."},
		{Name: "Cream", Description: "Rich dairy ingredient used for extra indulgence in coffee beverages."},
		{Name: "Sugar", Description: "Sweetens and balances the bitterness of coffee."},
		{Name: "Honey", Description: "Natural sweetener with floral notes."},
		{Name: "Cinnamon", Description: "Spice that adds warmth and sweetness to coffee."},
		{Name: "Nutmeg", Description: "Aromatic spice that enhances flavor complexity."},
		{Name: "Cocoa Powder", Description: "Adds a chocolatey note, often sprinkled on cappuccinos."},
		{Name: "Vanilla Syrup", Description: "Sweet syrup that adds smooth vanilla flavor."},
		{Name: "Caramel Syrup", Description: "Rich and buttery sweetness for flavored lattes."},
		{Name: "Hazelnut Syrup", Description: "Nutty and sweet, popular in flavored coffee."},
		{Name: "Almond Milk", Description: "Plant-based milk with a nutty flavor."},
		{Name: "Soy Milk", Description: "Creamy plant-based milk, often used as a dairy substitute."},
		{Name: "Oat Milk", Description: "Smooth, slightly sweet non-dairy milk popular in lattes."},
		{Name: "Coconut Milk", Description: "Tropical plant-based milk with mild sweetness."},
		{Name: "Whipped Cream", Description: "Adds a sweet, fluffy topping to coffee drinks."},
		{Name: "Ice", Description: "Used for iced coffee and cold brews."},
		{Name: "Cardamom", Description: "Spice with citrusy, herbal notes, popular in Middle Eastern coffee."},
		{Name: "Cloves", Description: "Strong spice with warming flavor, used in spiced coffee blends."},
		{Name: "Ginger", Description: "Adds warmth and a slight zing to coffee drinks."},
		{Name: "Peppermint Syrup", Description: "Minty syrup, often used in holiday coffee drinks."},
		{Name: "Maple Syrup", Description: "Natural sweetener with a rich, caramel-like taste."},
		{Name: "Brown Sugar", Description: "Sweetener with a deeper molasses flavor."},
		{Name: "Molasses", Description: "Thick syrup with bittersweet notes."},
		{Name: "Chocolate Chips", Description: "Used in mochas and dessert-style coffees."},
		{Name: "Cocoa Nibs", Description: "Crunchy, slightly bitter chocolate pieces for garnish."},
		{Name: "Orange Zest", Description: "Citrusy peel that adds brightness to coffee."},
		{Name: "Lemon Peel", Description: "Used in specialty coffee drinks for a citrus twist."},
		{Name: "Star Anise", Description: "Spice with licorice flavor, used in spiced coffee blends."},
		{Name: "Vanilla Bean", Description: "Natural vanilla with rich, aromatic sweetness."},
		{Name: "Agave Syrup", Description: "Plant-based natural sweetener, lighter than honey."},
		{Name: "Stevia", Description: "Zero-calorie natural sweetener."},
		{Name: "Salt", Description: "Enhances flavor and reduces bitterness in coffee."},
		{Name: "Alcohol (Baileys)", Description: "Creamy liqueur often added to coffee for flavor."},
		{Name: "Rum", Description: "Occasionally added for warmth and sweetness."},
		{Name: "Chili Powder", Description: "Adds a spicy kick to specialty coffee drinks."},
	}
}

// Flavors are the searchable flavors shown on the search tab.
func Flavors() []models.CatalogItem {
	return []models.CatalogItem{
		{Name: "Vanilla", Icon: "🌼", Description: "A classic sweet and creamy flavor derived from vanilla beans."},
		{Name: "Chocolate", Icon: "🍫", Description: "Rich and indulgent, made from cacao beans."},
		{Name: "Strawberry", Icon: "🍓", Description: "Sweet and fruity flavor from fresh strawberries."},
		{Name: "Matcha", Icon: "🍵", Description: "Earthy and slightly bitter, made from powdered green tea leaves."},
		{Name: "Caramel", Icon: "🍮", Description: "Sweet, buttery flavor created by heating sugar."},
		{Name: "Hazelnut", Icon: "🌰", Description: "Nutty and slightly sweet, commonly used in coffee creamers."},
		{Name: "Mango", Icon: "🥭", Description: "Tropical and juicy, with a balance of sweetness and tang."},
		{Name: "Coconut", Icon: "🥥", Description: "Creamy, tropical flavor with mild sweetness."},
		{Name: "Blueberry", Icon: "🫐", Description: "Sweet-tart flavor from blueberries."},
		{Name: "Pistachio", Icon: "🥜", Description: "Nutty, slightly sweet flavor from pistachio nuts."},
		{Name: "Lemon", Icon: "🍋", Description: "Tangy and refreshing citrus flavor."},
		{Name: "Raspberry", Icon: "🍇", Description: "Sweet and tart berry flavor."},
		{Name: "Coffee", Icon: "☕", Description: "Rich, bold flavor made from roasted coffee beans."},
		{Name: "Almond", Icon: "🌰", Description: "Nutty and subtly sweet flavor from almonds."},
		{Name: "Banana", Icon: "🍌", Description: "Sweet and creamy tropical fruit flavor."},
		{Name: "Chai", Icon: "🫖", Description: "Spiced tea flavor with cinnamon, cardamom, and cloves."},
		{Name: "Ginger", Icon: "🫚", Description: "Warm, slightly spicy flavor."},
		{Name: "Honey", Icon: "🍯", Description: "Sweet and floral flavor from natural honey."},
		{Name: "Mint", Icon: "🌿", Description: "Refreshing and cooling flavor."},
		{Name: "Peach", Icon: "🍑", Description: "Sweet, juicy flavor from ripe peaches."},
		{Name: "Pear", Icon: "🍐", Description: "Mildly sweet and delicate flavor from pears."},
		{Name: "Plum", Icon: "🍑", Description: "Sweet-tart flavor from plums."},
		{Name: "Blackberry", Icon: "🍇", Description: "Rich and tangy berry flavor."},
		{Name: "Cinnamon", Icon: "🌰", Description: "Warm, spicy flavor from cinnamon bark."},
		{Name: "Pumpkin", Icon: "🎃", Description: "Sweet and earthy fall-inspired flavor."},
		{Name: "Maple", Icon: "🍁", Description: "Sweet flavor from maple syrup."},
		{Name: "Orange", Icon: "🍊", Description: "Citrus-flavored, tangy and refreshing."},
		{Name: "Lychee", Icon: "🫐", Description: "Sweet tropical flavor from lychee fruit."},
		{Name: "Taro", Icon: "🍠", Description: "Earthy, slightly nutty flavor from taro root."},
		{Name: "Ube", Icon: "🍠", Description: "Sweet, vibrant purple yam flavor."},
		{Name: "Cherry", Icon: "🍒", Description: "Sweet and slightly tart flavor from cherries."},
		{Name: "Watermelon", Icon: "🍉", Description: "Juicy, sweet summer fruit flavor."},
		{Name: "Kiwi", Icon: "🥝", Description: "Sweet-tart tropical fruit flavor."},
		{Name: "Passionfruit", Icon: "🥭", Description: "Tropical, tangy, aromatic flavor."},
		{Name: "Cantaloupe", Icon: "🍈", Description: "Mildly sweet melon flavor."},
		{Name: "Grapefruit", Icon: "🍊", Description: "Citrus flavor with a tangy bite."},
		{Name: "Cranberry", Icon: "🍇", Description: "Slightly tart and fruity flavor."},
		{Name: "Blackcurrant", Icon: "🫐", Description: "Bold, tart berry flavor."},
		{Name: "Papaya", Icon: "🫛", Description: "Tropical, sweet, and juicy flavor."},
		{Name: "Dragonfruit", Icon: "🐉", Description: "Mildly sweet, tropical fruit flavor."},
		{Name: "Fig", Icon: "🍈", Description: "Sweet and earthy fruit flavor."},
	}
}
