package catalog

// popularBrands is the fixed search order for model-as-brand detection.
// Only this subset is scanned, first match wins.
var popularBrands = []string{
	"toyota", "honda", "nissan", "hyundai", "kia",
	"ford", "chevrolet", "dodge", "mercedes", "bmw",
}

var brandTable = []Brand{
	{Token: "toyota", DisplayEN: "Toyota", DisplayAR: "تويوتا", Aliases: []string{"toyotta", "تويتا"}},
	{Token: "honda", DisplayEN: "Honda", DisplayAR: "هوندا", Aliases: []string{"هندا"}},
	{Token: "nissan", DisplayEN: "Nissan", DisplayAR: "نيسان", Aliases: []string{"nisan", "datsun", "داتسون"}},
	{Token: "hyundai", DisplayEN: "Hyundai", DisplayAR: "هيونداي", Aliases: []string{"hundai", "hyundia", "huyndai", "هونداي", "هيوندا"}},
	{Token: "kia", DisplayEN: "Kia", DisplayAR: "كيا", Aliases: []string{}},
	{Token: "ford", DisplayEN: "Ford", DisplayAR: "فورد", Aliases: []string{}},
	{Token: "chevrolet", DisplayEN: "Chevrolet", DisplayAR: "شفروليه", Aliases: []string{"chevy", "chev", "شيفروليه", "شفر"}},
	{Token: "dodge", DisplayEN: "Dodge", DisplayAR: "دودج", Aliases: []string{"دوج"}},
	{Token: "mercedes", DisplayEN: "Mercedes-Benz", DisplayAR: "مرسيدس", Aliases: []string{"mercedes benz", "mercedez", "merc", "benz", "مرسيدس بنز"}},
	{Token: "bmw", DisplayEN: "BMW", DisplayAR: "بي ام دبليو", Aliases: []string{"بمو"}},
	{Token: "audi", DisplayEN: "Audi", DisplayAR: "اودي", Aliases: []string{"أودي"}},
	{Token: "lexus", DisplayEN: "Lexus", DisplayAR: "لكزس", Aliases: []string{"ليكزس"}},
	{Token: "mazda", DisplayEN: "Mazda", DisplayAR: "مازدا", Aliases: []string{}},
	{Token: "mitsubishi", DisplayEN: "Mitsubishi", DisplayAR: "ميتسوبيشي", Aliases: []string{"mitsubushi", "متسوبيشي"}},
	{Token: "gmc", DisplayEN: "GMC", DisplayAR: "جي ام سي", Aliases: []string{"جمس"}},
	{Token: "jeep", DisplayEN: "Jeep", DisplayAR: "جيب", Aliases: []string{}},
	{Token: "volkswagen", DisplayEN: "Volkswagen", DisplayAR: "فولكس واجن", Aliases: []string{"vw", "فولكس"}},
	{Token: "suzuki", DisplayEN: "Suzuki", DisplayAR: "سوزوكي", Aliases: []string{}},
	{Token: "peugeot", DisplayEN: "Peugeot", DisplayAR: "بيجو", Aliases: []string{"pegeout", "peugot"}},
	{Token: "renault", DisplayEN: "Renault", DisplayAR: "رينو", Aliases: []string{"renult"}},
}

var modelTable = []ModelRecord{
	// Toyota
	{Brand: "toyota", Token: "camry", Display: "Camry", Aliases: []string{"كامري", "camery"}, StartYear: 1982},
	{Brand: "toyota", Token: "corolla", Display: "Corolla", Aliases: []string{"كورولا", "corola"}, StartYear: 1966},
	{Brand: "toyota", Token: "land cruiser", Display: "Land Cruiser", Aliases: []string{"لاندكروزر", "لاند كروزر", "landcruiser"}, StartYear: 1951},
	{Brand: "toyota", Token: "hilux", Display: "Hilux", Aliases: []string{"هايلكس"}, StartYear: 1968},
	{Brand: "toyota", Token: "rav4", Display: "RAV4", Aliases: []string{"راف فور", "rav 4"}, StartYear: 1994},
	{Brand: "toyota", Token: "yaris", Display: "Yaris", Aliases: []string{"يارس"}, StartYear: 1999},
	{Brand: "toyota", Token: "avalon", Display: "Avalon", Aliases: []string{"افالون"}, StartYear: 1994, EndYear: 2022},
	// Honda
	{Brand: "honda", Token: "civic", Display: "Civic", Aliases: []string{"سيفيك", "civec"}, StartYear: 1972},
	{Brand: "honda", Token: "accord", Display: "Accord", Aliases: []string{"اكورد", "أكورد"}, StartYear: 1976},
	{Brand: "honda", Token: "crv", Display: "CR-V", Aliases: []string{"cr v", "سي ار في"}, StartYear: 1995},
	{Brand: "honda", Token: "pilot", Display: "Pilot", Aliases: []string{"بايلوت"}, StartYear: 2002},
	// Nissan
	{Brand: "nissan", Token: "altima", Display: "Altima", Aliases: []string{"التيما", "الطيما"}, StartYear: 1992},
	{Brand: "nissan", Token: "sunny", Display: "Sunny", Aliases: []string{"صني"}, StartYear: 1966},
	{Brand: "nissan", Token: "patrol", Display: "Patrol", Aliases: []string{"باترول", "بترول"}, StartYear: 1951},
	{Brand: "nissan", Token: "maxima", Display: "Maxima", Aliases: []string{"ماكسيما"}, StartYear: 1981},
	{Brand: "nissan", Token: "pathfinder", Display: "Pathfinder", Aliases: []string{"باثفندر"}, StartYear: 1985},
	// Hyundai
	{Brand: "hyundai", Token: "elantra", Display: "Elantra", Aliases: []string{"النترا", "الانترا"}, StartYear: 1990},
	{Brand: "hyundai", Token: "sonata", Display: "Sonata", Aliases: []string{"سوناتا"}, StartYear: 1985},
	{Brand: "hyundai", Token: "accent", Display: "Accent", Aliases: []string{"اكسنت", "أكسنت"}, StartYear: 1994},
	{Brand: "hyundai", Token: "tucson", Display: "Tucson", Aliases: []string{"توسان", "توكسون"}, StartYear: 2004},
	{Brand: "hyundai", Token: "santa fe", Display: "Santa Fe", Aliases: []string{"سنتافي", "سنتا في", "santafe"}, StartYear: 2000},
	// Kia
	{Brand: "kia", Token: "optima", Display: "Optima", Aliases: []string{"اوبتيما"}, StartYear: 2000, EndYear: 2020},
	{Brand: "kia", Token: "rio", Display: "Rio", Aliases: []string{"ريو"}, StartYear: 1999},
	{Brand: "kia", Token: "sportage", Display: "Sportage", Aliases: []string{"سبورتاج", "سبورتج"}, StartYear: 1993},
	{Brand: "kia", Token: "sorento", Display: "Sorento", Aliases: []string{"سورينتو"}, StartYear: 2002},
	// Ford
	{Brand: "ford", Token: "f150", Display: "F-150", Aliases: []string{"f 150", "اف ١٥٠"}, StartYear: 1975},
	{Brand: "ford", Token: "explorer", Display: "Explorer", Aliases: []string{"اكسبلورر", "إكسبلورر"}, StartYear: 1990},
	{Brand: "ford", Token: "mustang", Display: "Mustang", Aliases: []string{"موستنج", "موستانج", "mustange"}, StartYear: 1964},
	{Brand: "ford", Token: "focus", Display: "Focus", Aliases: []string{"فوكس"}, StartYear: 1998},
	{Brand: "ford", Token: "taurus", Display: "Taurus", Aliases: []string{"تورس"}, StartYear: 1985, EndYear: 2019},
	// Chevrolet
	{Brand: "chevrolet", Token: "malibu", Display: "Malibu", Aliases: []string{"ماليبو"}, StartYear: 1964},
	{Brand: "chevrolet", Token: "impala", Display: "Impala", Aliases: []string{"امبالا", "إمبالا"}, StartYear: 1958, EndYear: 2020},
	{Brand: "chevrolet", Token: "tahoe", Display: "Tahoe", Aliases: []string{"تاهو"}, StartYear: 1995},
	{Brand: "chevrolet", Token: "silverado", Display: "Silverado", Aliases: []string{"سلفرادو"}, StartYear: 1999},
	{Brand: "chevrolet", Token: "camaro", Display: "Camaro", Aliases: []string{"كمارو", "كامارو"}, StartYear: 1966},
	// Dodge
	{Brand: "dodge", Token: "charger", Display: "Charger", Aliases: []string{"تشارجر", "شارجر"}, StartYear: 2006},
	{Brand: "dodge", Token: "challenger", Display: "Challenger", Aliases: []string{"تشالنجر", "شالنجر"}, StartYear: 2008},
	{Brand: "dodge", Token: "durango", Display: "Durango", Aliases: []string{"دورانجو"}, StartYear: 1998},
	// Mercedes
	{Brand: "mercedes", Token: "c class", Display: "C-Class", Aliases: []string{"c-class", "سي كلاس"}, StartYear: 1993},
	{Brand: "mercedes", Token: "e class", Display: "E-Class", Aliases: []string{"e-class", "اي كلاس"}, StartYear: 1993},
	{Brand: "mercedes", Token: "s class", Display: "S-Class", Aliases: []string{"s-class", "اس كلاس"}, StartYear: 1972},
	{Brand: "mercedes", Token: "g class", Display: "G-Class", Aliases: []string{"g-class", "جي كلاس", "غيلندفاغن"}, StartYear: 1979},
	// BMW
	{Brand: "bmw", Token: "3 series", Display: "3 Series", Aliases: []string{"الفئة الثالثة"}, StartYear: 1975},
	{Brand: "bmw", Token: "5 series", Display: "5 Series", Aliases: []string{"الفئة الخامسة"}, StartYear: 1972},
	{Brand: "bmw", Token: "x5", Display: "X5", Aliases: []string{"اكس فايف"}, StartYear: 1999},
	// Others
	{Brand: "audi", Token: "a4", Display: "A4", Aliases: []string{}, StartYear: 1994},
	{Brand: "audi", Token: "q5", Display: "Q5", Aliases: []string{}, StartYear: 2008},
	{Brand: "lexus", Token: "es", Display: "ES", Aliases: []string{"اي اس"}, StartYear: 1989},
	{Brand: "lexus", Token: "lx", Display: "LX", Aliases: []string{"ال اكس"}, StartYear: 1995},
	{Brand: "mazda", Token: "3", Display: "Mazda3", Aliases: []string{"mazda3", "مازدا ٣"}, StartYear: 2003},
	{Brand: "mazda", Token: "6", Display: "Mazda6", Aliases: []string{"mazda6"}, StartYear: 2002, EndYear: 2021},
	{Brand: "mitsubishi", Token: "pajero", Display: "Pajero", Aliases: []string{"باجيرو"}, StartYear: 1981, EndYear: 2021},
	{Brand: "mitsubishi", Token: "lancer", Display: "Lancer", Aliases: []string{"لانسر"}, StartYear: 1973, EndYear: 2017},
	{Brand: "gmc", Token: "yukon", Display: "Yukon", Aliases: []string{"يوكن", "يوكون"}, StartYear: 1991},
	{Brand: "gmc", Token: "sierra", Display: "Sierra", Aliases: []string{"سييرا"}, StartYear: 1998},
	{Brand: "jeep", Token: "wrangler", Display: "Wrangler", Aliases: []string{"رانجلر"}, StartYear: 1986},
	{Brand: "jeep", Token: "grand cherokee", Display: "Grand Cherokee", Aliases: []string{"جراند شيروكي", "شيروكي"}, StartYear: 1992},
	{Brand: "volkswagen", Token: "golf", Display: "Golf", Aliases: []string{"جولف"}, StartYear: 1974},
	{Brand: "volkswagen", Token: "passat", Display: "Passat", Aliases: []string{"باسات"}, StartYear: 1973},
	{Brand: "suzuki", Token: "swift", Display: "Swift", Aliases: []string{"سويفت"}, StartYear: 1983},
	{Brand: "peugeot", Token: "308", Display: "308", Aliases: []string{}, StartYear: 2007},
	{Brand: "renault", Token: "duster", Display: "Duster", Aliases: []string{"داستر"}, StartYear: 2010},
}
