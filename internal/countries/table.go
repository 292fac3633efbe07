package countries

// CountryRecord is one canonical country. All matching tokens (aliases,
// keywords, demonyms) are stored lowercase. Aliases are exact-match resolution
// tokens and must not overlap across countries; keywords are substring
// detection tokens (major cities, regions, historical names) where overlap is
// tolerated as heuristic imprecision.
type CountryRecord struct {
	ISO2     string
	ISO3     string
	Name     string
	Flag     string
	Aliases  []string
	Keywords []string
	Demonyms []string
}

// table is the canonical country list. Static, loaded once, never mutated.
var table = []CountryRecord{
	// Americas
	{ISO2: "US", ISO3: "USA", Name: "United States", Flag: "🇺🇸",
		Aliases:  []string{"usa", "united states of america", "america", "u.s.", "u.s.a."},
		Keywords: []string{"new york", "california", "chicago", "boston", "texas", "new orleans", "los angeles", "appalachia", "mississippi"},
		Demonyms: []string{"american"}},
	{ISO2: "CA", ISO3: "CAN", Name: "Canada", Flag: "🇨🇦",
		Keywords: []string{"toronto", "montreal", "vancouver", "quebec", "ontario"},
		Demonyms: []string{"canadian"}},
	{ISO2: "MX", ISO3: "MEX", Name: "Mexico", Flag: "🇲🇽",
		Keywords: []string{"mexico city", "oaxaca", "yucatan", "guadalajara"},
		Demonyms: []string{"mexican"}},
	{ISO2: "CU", ISO3: "CUB", Name: "Cuba", Flag: "🇨🇺",
		Keywords: []string{"havana"},
		Demonyms: []string{"cuban"}},
	{ISO2: "HT", ISO3: "HTI", Name: "Haiti", Flag: "🇭🇹",
		Keywords: []string{"port-au-prince"},
		Demonyms: []string{"haitian"}},
	{ISO2: "DO", ISO3: "DOM", Name: "Dominican Republic", Flag: "🇩🇴",
		Keywords: []string{"santo domingo"},
		Demonyms: []string{"dominican"}},
	{ISO2: "JM", ISO3: "JAM", Name: "Jamaica", Flag: "🇯🇲",
		Keywords: []string{"kingston"},
		Demonyms: []string{"jamaican"}},
	{ISO2: "TT", ISO3: "TTO", Name: "Trinidad and Tobago", Flag: "🇹🇹",
		Aliases:  []string{"trinidad", "tobago"},
		Demonyms: []string{"trinidadian", "tobagonian"}},
	{ISO2: "GT", ISO3: "GTM", Name: "Guatemala", Flag: "🇬🇹",
		Demonyms: []string{"guatemalan"}},
	{ISO2: "NI", ISO3: "NIC", Name: "Nicaragua", Flag: "🇳🇮",
		Demonyms: []string{"nicaraguan"}},
	{ISO2: "CR", ISO3: "CRI", Name: "Costa Rica", Flag: "🇨🇷",
		Demonyms: []string{"costa rican"}},
	{ISO2: "PA", ISO3: "PAN", Name: "Panama", Flag: "🇵🇦",
		Demonyms: []string{"panamanian"}},
	{ISO2: "CO", ISO3: "COL", Name: "Colombia", Flag: "🇨🇴",
		Keywords: []string{"bogota", "bogotá", "medellin", "cartagena", "macondo"},
		Demonyms: []string{"colombian"}},
	{ISO2: "VE", ISO3: "VEN", Name: "Venezuela", Flag: "🇻🇪",
		Keywords: []string{"caracas"},
		Demonyms: []string{"venezuelan"}},
	{ISO2: "EC", ISO3: "ECU", Name: "Ecuador", Flag: "🇪🇨",
		Keywords: []string{"quito", "galapagos"},
		Demonyms: []string{"ecuadorian"}},
	{ISO2: "PE", ISO3: "PER", Name: "Peru", Flag: "🇵🇪",
		Keywords: []string{"lima", "cusco", "machu picchu"},
		Demonyms: []string{"peruvian"}},
	{ISO2: "BO", ISO3: "BOL", Name: "Bolivia", Flag: "🇧🇴",
		Keywords: []string{"la paz"},
		Demonyms: []string{"bolivian"}},
	{ISO2: "BR", ISO3: "BRA", Name: "Brazil", Flag: "🇧🇷",
		Aliases:  []string{"brasil"},
		Keywords: []string{"rio de janeiro", "sao paulo", "são paulo", "amazonia", "bahia"},
		Demonyms: []string{"brazilian"}},
	{ISO2: "PY", ISO3: "PRY", Name: "Paraguay", Flag: "🇵🇾",
		Demonyms: []string{"paraguayan"}},
	{ISO2: "UY", ISO3: "URY", Name: "Uruguay", Flag: "🇺🇾",
		Keywords: []string{"montevideo"},
		Demonyms: []string{"uruguayan"}},
	{ISO2: "AR", ISO3: "ARG", Name: "Argentina", Flag: "🇦🇷",
		Keywords: []string{"buenos aires", "patagonia", "pampas"},
		Demonyms: []string{"argentine", "argentinian"}},
	{ISO2: "CL", ISO3: "CHL", Name: "Chile", Flag: "🇨🇱",
		Keywords: []string{"santiago de chile", "valparaiso"},
		Demonyms: []string{"chilean"}},

	// Europe
	{ISO2: "GB", ISO3: "GBR", Name: "United Kingdom", Flag: "🇬🇧",
		Aliases:  []string{"uk", "great britain", "britain", "england", "scotland", "wales", "northern ireland"},
		Keywords: []string{"london", "edinburgh", "manchester", "yorkshire", "cornwall", "glasgow"},
		Demonyms: []string{"british", "english", "scottish", "welsh"}},
	{ISO2: "IE", ISO3: "IRL", Name: "Ireland", Flag: "🇮🇪",
		Keywords: []string{"dublin", "galway", "connemara"},
		Demonyms: []string{"irish"}},
	{ISO2: "FR", ISO3: "FRA", Name: "France", Flag: "🇫🇷",
		Aliases:  []string{"french republic"},
		Keywords: []string{"paris", "marseille", "lyon", "provence", "normandy", "brittany"},
		Demonyms: []string{"french"}},
	{ISO2: "ES", ISO3: "ESP", Name: "Spain", Flag: "🇪🇸",
		Keywords: []string{"madrid", "barcelona", "andalusia", "catalonia", "seville"},
		Demonyms: []string{"spanish", "spaniard"}},
	{ISO2: "PT", ISO3: "PRT", Name: "Portugal", Flag: "🇵🇹",
		Keywords: []string{"lisbon", "porto"},
		Demonyms: []string{"portuguese"}},
	{ISO2: "IT", ISO3: "ITA", Name: "Italy", Flag: "🇮🇹",
		Keywords: []string{"rome", "venice", "florence", "naples", "sicily", "tuscany", "milan"},
		Demonyms: []string{"italian"}},
	{ISO2: "DE", ISO3: "DEU", Name: "Germany", Flag: "🇩🇪",
		Aliases:  []string{"deutschland", "west germany", "east germany"},
		Keywords: []string{"berlin", "munich", "hamburg", "bavaria", "frankfurt"},
		Demonyms: []string{"german"}},
	{ISO2: "NL", ISO3: "NLD", Name: "Netherlands", Flag: "🇳🇱",
		Aliases:  []string{"holland", "the netherlands"},
		Keywords: []string{"amsterdam", "rotterdam"},
		Demonyms: []string{"dutch"}},
	{ISO2: "BE", ISO3: "BEL", Name: "Belgium", Flag: "🇧🇪",
		Keywords: []string{"brussels", "antwerp", "flanders"},
		Demonyms: []string{"belgian", "flemish"}},
	{ISO2: "LU", ISO3: "LUX", Name: "Luxembourg", Flag: "🇱🇺",
		Demonyms: []string{"luxembourgish"}},
	{ISO2: "CH", ISO3: "CHE", Name: "Switzerland", Flag: "🇨🇭",
		Keywords: []string{"zurich", "geneva", "bern"},
		Demonyms: []string{"swiss"}},
	{ISO2: "AT", ISO3: "AUT", Name: "Austria", Flag: "🇦🇹",
		Keywords: []string{"vienna", "salzburg"},
		Demonyms: []string{"austrian"}},
	{ISO2: "DK", ISO3: "DNK", Name: "Denmark", Flag: "🇩🇰",
		Keywords: []string{"copenhagen"},
		Demonyms: []string{"danish", "dane"}},
	{ISO2: "NO", ISO3: "NOR", Name: "Norway", Flag: "🇳🇴",
		Keywords: []string{"oslo", "bergen"},
		Demonyms: []string{"norwegian"}},
	{ISO2: "SE", ISO3: "SWE", Name: "Sweden", Flag: "🇸🇪",
		Keywords: []string{"stockholm", "gothenburg"},
		Demonyms: []string{"swedish", "swede"}},
	{ISO2: "FI", ISO3: "FIN", Name: "Finland", Flag: "🇫🇮",
		Keywords: []string{"helsinki", "lapland"},
		Demonyms: []string{"finnish", "finn"}},
	{ISO2: "IS", ISO3: "ISL", Name: "Iceland", Flag: "🇮🇸",
		Keywords: []string{"reykjavik"},
		Demonyms: []string{"icelandic"}},
	{ISO2: "PL", ISO3: "POL", Name: "Poland", Flag: "🇵🇱",
		Keywords: []string{"warsaw", "krakow", "gdansk"},
		Demonyms: []string{"polish", "pole"}},
	{ISO2: "CZ", ISO3: "CZE", Name: "Czech Republic", Flag: "🇨🇿",
		Aliases:  []string{"czechia", "bohemia", "czechoslovakia"},
		Keywords: []string{"prague"},
		Demonyms: []string{"czech"}},
	{ISO2: "SK", ISO3: "SVK", Name: "Slovakia", Flag: "🇸🇰",
		Keywords: []string{"bratislava"},
		Demonyms: []string{"slovak"}},
	{ISO2: "HU", ISO3: "HUN", Name: "Hungary", Flag: "🇭🇺",
		Keywords: []string{"budapest"},
		Demonyms: []string{"hungarian"}},
	{ISO2: "RO", ISO3: "ROU", Name: "Romania", Flag: "🇷🇴",
		Keywords: []string{"bucharest", "transylvania"},
		Demonyms: []string{"romanian"}},
	{ISO2: "BG", ISO3: "BGR", Name: "Bulgaria", Flag: "🇧🇬",
		Keywords: []string{"sofia"},
		Demonyms: []string{"bulgarian"}},
	{ISO2: "GR", ISO3: "GRC", Name: "Greece", Flag: "🇬🇷",
		Aliases:  []string{"hellas", "hellenic republic"},
		Keywords: []string{"athens", "crete", "thessaloniki"},
		Demonyms: []string{"greek"}},
	{ISO2: "HR", ISO3: "HRV", Name: "Croatia", Flag: "🇭🇷",
		Keywords: []string{"zagreb", "dalmatia"},
		Demonyms: []string{"croatian"}},
	{ISO2: "RS", ISO3: "SRB", Name: "Serbia", Flag: "🇷🇸",
		Keywords: []string{"belgrade"},
		Demonyms: []string{"serbian"}},
	{ISO2: "BA", ISO3: "BIH", Name: "Bosnia and Herzegovina", Flag: "🇧🇦",
		Aliases:  []string{"bosnia"},
		Keywords: []string{"sarajevo"},
		Demonyms: []string{"bosnian"}},
	{ISO2: "SI", ISO3: "SVN", Name: "Slovenia", Flag: "🇸🇮",
		Keywords: []string{"ljubljana"},
		Demonyms: []string{"slovenian", "slovene"}},
	{ISO2: "MK", ISO3: "MKD", Name: "North Macedonia", Flag: "🇲🇰",
		Aliases:  []string{"macedonia"},
		Keywords: []string{"skopje"},
		Demonyms: []string{"macedonian"}},
	{ISO2: "AL", ISO3: "ALB", Name: "Albania", Flag: "🇦🇱",
		Keywords: []string{"tirana"},
		Demonyms: []string{"albanian"}},
	{ISO2: "UA", ISO3: "UKR", Name: "Ukraine", Flag: "🇺🇦",
		Keywords: []string{"kyiv", "kiev", "odesa", "lviv"},
		Demonyms: []string{"ukrainian"}},
	{ISO2: "BY", ISO3: "BLR", Name: "Belarus", Flag: "🇧🇾",
		Keywords: []string{"minsk"},
		Demonyms: []string{"belarusian"}},
	{ISO2: "LT", ISO3: "LTU", Name: "Lithuania", Flag: "🇱🇹",
		Keywords: []string{"vilnius"},
		Demonyms: []string{"lithuanian"}},
	{ISO2: "LV", ISO3: "LVA", Name: "Latvia", Flag: "🇱🇻",
		Keywords: []string{"riga"},
		Demonyms: []string{"latvian"}},
	{ISO2: "EE", ISO3: "EST", Name: "Estonia", Flag: "🇪🇪",
		Keywords: []string{"tallinn"},
		Demonyms: []string{"estonian"}},
	{ISO2: "RU", ISO3: "RUS", Name: "Russia", Flag: "🇷🇺",
		Aliases:  []string{"russian federation", "soviet union", "ussr"},
		Keywords: []string{"moscow", "st petersburg", "saint petersburg", "siberia"},
		Demonyms: []string{"russian"}},

	// Africa
	{ISO2: "MA", ISO3: "MAR", Name: "Morocco", Flag: "🇲🇦",
		Keywords: []string{"casablanca", "marrakesh", "tangier", "fez"},
		Demonyms: []string{"moroccan"}},
	{ISO2: "DZ", ISO3: "DZA", Name: "Algeria", Flag: "🇩🇿",
		Keywords: []string{"algiers"},
		Demonyms: []string{"algerian"}},
	{ISO2: "TN", ISO3: "TUN", Name: "Tunisia", Flag: "🇹🇳",
		Keywords: []string{"tunis", "carthage"},
		Demonyms: []string{"tunisian"}},
	{ISO2: "LY", ISO3: "LBY", Name: "Libya", Flag: "🇱🇾",
		Keywords: []string{"tripoli"},
		Demonyms: []string{"libyan"}},
	{ISO2: "EG", ISO3: "EGY", Name: "Egypt", Flag: "🇪🇬",
		Keywords: []string{"cairo", "alexandria", "luxor", "nile"},
		Demonyms: []string{"egyptian"}},
	{ISO2: "SD", ISO3: "SDN", Name: "Sudan", Flag: "🇸🇩",
		Keywords: []string{"khartoum"},
		Demonyms: []string{"sudanese"}},
	{ISO2: "SS", ISO3: "SSD", Name: "South Sudan", Flag: "🇸🇸",
		Keywords: []string{"juba"},
		Demonyms: []string{"south sudanese"}},
	{ISO2: "ET", ISO3: "ETH", Name: "Ethiopia", Flag: "🇪🇹",
		Aliases:  []string{"abyssinia"},
		Keywords: []string{"addis ababa"},
		Demonyms: []string{"ethiopian"}},
	{ISO2: "SO", ISO3: "SOM", Name: "Somalia", Flag: "🇸🇴",
		Keywords: []string{"mogadishu"},
		Demonyms: []string{"somali"}},
	{ISO2: "KE", ISO3: "KEN", Name: "Kenya", Flag: "🇰🇪",
		Keywords: []string{"nairobi", "mombasa"},
		Demonyms: []string{"kenyan"}},
	{ISO2: "TZ", ISO3: "TZA", Name: "Tanzania", Flag: "🇹🇿",
		Keywords: []string{"dar es salaam", "zanzibar", "kilimanjaro"},
		Demonyms: []string{"tanzanian"}},
	{ISO2: "UG", ISO3: "UGA", Name: "Uganda", Flag: "🇺🇬",
		Keywords: []string{"kampala"},
		Demonyms: []string{"ugandan"}},
	{ISO2: "RW", ISO3: "RWA", Name: "Rwanda", Flag: "🇷🇼",
		Keywords: []string{"kigali"},
		Demonyms: []string{"rwandan"}},
	{ISO2: "NG", ISO3: "NGA", Name: "Nigeria", Flag: "🇳🇬",
		Keywords: []string{"lagos", "abuja", "biafra"},
		Demonyms: []string{"nigerian"}},
	{ISO2: "GH", ISO3: "GHA", Name: "Ghana", Flag: "🇬🇭",
		Keywords: []string{"accra"},
		Demonyms: []string{"ghanaian"}},
	{ISO2: "SN", ISO3: "SEN", Name: "Senegal", Flag: "🇸🇳",
		Keywords: []string{"dakar"},
		Demonyms: []string{"senegalese"}},
	{ISO2: "ML", ISO3: "MLI", Name: "Mali", Flag: "🇲🇱",
		Keywords: []string{"bamako", "timbuktu"},
		Demonyms: []string{"malian"}},
	{ISO2: "CI", ISO3: "CIV", Name: "Ivory Coast", Flag: "🇨🇮",
		Aliases:  []string{"cote d'ivoire", "côte d'ivoire"},
		Keywords: []string{"abidjan"},
		Demonyms: []string{"ivorian"}},
	{ISO2: "CM", ISO3: "CMR", Name: "Cameroon", Flag: "🇨🇲",
		Keywords: []string{"yaounde", "douala"},
		Demonyms: []string{"cameroonian"}},
	{ISO2: "CD", ISO3: "COD", Name: "DR Congo", Flag: "🇨🇩",
		Aliases:  []string{"democratic republic of the congo", "congo-kinshasa", "zaire"},
		Keywords: []string{"kinshasa"},
		Demonyms: []string{"congolese"}},
	{ISO2: "CF", ISO3: "CAF", Name: "Central African Republic", Flag: "🇨🇫",
		Keywords: []string{"bangui"},
		Demonyms: []string{"central african"}},
	{ISO2: "GQ", ISO3: "GNQ", Name: "Equatorial Guinea", Flag: "🇬🇶",
		Keywords: []string{"malabo"},
		Demonyms: []string{"equatoguinean"}},
	{ISO2: "AO", ISO3: "AGO", Name: "Angola", Flag: "🇦🇴",
		Keywords: []string{"luanda"},
		Demonyms: []string{"angolan"}},
	{ISO2: "ZM", ISO3: "ZMB", Name: "Zambia", Flag: "🇿🇲",
		Keywords: []string{"lusaka"},
		Demonyms: []string{"zambian"}},
	{ISO2: "ZW", ISO3: "ZWE", Name: "Zimbabwe", Flag: "🇿🇼",
		Aliases:  []string{"rhodesia"},
		Keywords: []string{"harare", "bulawayo"},
		Demonyms: []string{"zimbabwean"}},
	{ISO2: "MZ", ISO3: "MOZ", Name: "Mozambique", Flag: "🇲🇿",
		Keywords: []string{"maputo"},
		Demonyms: []string{"mozambican"}},
	{ISO2: "BW", ISO3: "BWA", Name: "Botswana", Flag: "🇧🇼",
		Keywords: []string{"gaborone", "kalahari"},
		Demonyms: []string{"botswanan", "motswana"}},
	{ISO2: "NA", ISO3: "NAM", Name: "Namibia", Flag: "🇳🇦",
		Keywords: []string{"windhoek"},
		Demonyms: []string{"namibian"}},
	{ISO2: "SZ", ISO3: "SWZ", Name: "Eswatini", Flag: "🇸🇿",
		Aliases:  []string{"swaziland"},
		Keywords: []string{"mbabane"},
		Demonyms: []string{"swazi"}},
	{ISO2: "ZA", ISO3: "ZAF", Name: "South Africa", Flag: "🇿🇦",
		Keywords: []string{"johannesburg", "cape town", "pretoria", "soweto"},
		Demonyms: []string{"south african"}},
	{ISO2: "MG", ISO3: "MDG", Name: "Madagascar", Flag: "🇲🇬",
		Keywords: []string{"antananarivo"},
		Demonyms: []string{"malagasy"}},

	// Middle East & Central Asia
	{ISO2: "TR", ISO3: "TUR", Name: "Turkey", Flag: "🇹🇷",
		Aliases:  []string{"turkiye", "türkiye", "ottoman empire"},
		Keywords: []string{"istanbul", "ankara", "anatolia", "constantinople"},
		Demonyms: []string{"turkish", "turk"}},
	{ISO2: "SY", ISO3: "SYR", Name: "Syria", Flag: "🇸🇾",
		Keywords: []string{"damascus", "aleppo"},
		Demonyms: []string{"syrian"}},
	{ISO2: "LB", ISO3: "LBN", Name: "Lebanon", Flag: "🇱🇧",
		Keywords: []string{"beirut"},
		Demonyms: []string{"lebanese"}},
	{ISO2: "IL", ISO3: "ISR", Name: "Israel", Flag: "🇮🇱",
		Keywords: []string{"tel aviv", "jerusalem"},
		Demonyms: []string{"israeli"}},
	{ISO2: "PS", ISO3: "PSE", Name: "Palestine", Flag: "🇵🇸",
		Keywords: []string{"gaza", "ramallah", "west bank"},
		Demonyms: []string{"palestinian"}},
	{ISO2: "JO", ISO3: "JOR", Name: "Jordan", Flag: "🇯🇴",
		Keywords: []string{"amman", "petra"},
		Demonyms: []string{"jordanian"}},
	{ISO2: "IQ", ISO3: "IRQ", Name: "Iraq", Flag: "🇮🇶",
		Aliases:  []string{"mesopotamia"},
		Keywords: []string{"baghdad", "mosul", "basra"},
		Demonyms: []string{"iraqi"}},
	{ISO2: "IR", ISO3: "IRN", Name: "Iran", Flag: "🇮🇷",
		Aliases:  []string{"persia"},
		Keywords: []string{"tehran", "isfahan", "shiraz"},
		Demonyms: []string{"iranian", "persian"}},
	{ISO2: "SA", ISO3: "SAU", Name: "Saudi Arabia", Flag: "🇸🇦",
		Keywords: []string{"riyadh", "mecca", "jeddah", "medina"},
		Demonyms: []string{"saudi"}},
	{ISO2: "YE", ISO3: "YEM", Name: "Yemen", Flag: "🇾🇪",
		Keywords: []string{"sanaa", "aden"},
		Demonyms: []string{"yemeni"}},
	{ISO2: "OM", ISO3: "OMN", Name: "Oman", Flag: "🇴🇲",
		Keywords: []string{"muscat"},
		Demonyms: []string{"omani"}},
	{ISO2: "AE", ISO3: "ARE", Name: "United Arab Emirates", Flag: "🇦🇪",
		Aliases:  []string{"uae", "emirates"},
		Keywords: []string{"dubai", "abu dhabi"},
		Demonyms: []string{"emirati"}},
	{ISO2: "QA", ISO3: "QAT", Name: "Qatar", Flag: "🇶🇦",
		Keywords: []string{"doha"},
		Demonyms: []string{"qatari"}},
	{ISO2: "KW", ISO3: "KWT", Name: "Kuwait", Flag: "🇰🇼",
		Demonyms: []string{"kuwaiti"}},
	{ISO2: "GE", ISO3: "GEO", Name: "Georgia", Flag: "🇬🇪",
		Keywords: []string{"tbilisi"},
		Demonyms: []string{"georgian"}},
	{ISO2: "AM", ISO3: "ARM", Name: "Armenia", Flag: "🇦🇲",
		Keywords: []string{"yerevan"},
		Demonyms: []string{"armenian"}},
	{ISO2: "AZ", ISO3: "AZE", Name: "Azerbaijan", Flag: "🇦🇿",
		Keywords: []string{"baku"},
		Demonyms: []string{"azerbaijani"}},
	{ISO2: "KZ", ISO3: "KAZ", Name: "Kazakhstan", Flag: "🇰🇿",
		Keywords: []string{"almaty", "astana"},
		Demonyms: []string{"kazakh"}},
	{ISO2: "UZ", ISO3: "UZB", Name: "Uzbekistan", Flag: "🇺🇿",
		Keywords: []string{"tashkent", "samarkand", "bukhara"},
		Demonyms: []string{"uzbek"}},
	{ISO2: "AF", ISO3: "AFG", Name: "Afghanistan", Flag: "🇦🇫",
		Keywords: []string{"kabul", "kandahar"},
		Demonyms: []string{"afghan"}},

	// South & East Asia, Oceania
	{ISO2: "PK", ISO3: "PAK", Name: "Pakistan", Flag: "🇵🇰",
		Keywords: []string{"karachi", "lahore", "islamabad"},
		Demonyms: []string{"pakistani"}},
	{ISO2: "IN", ISO3: "IND", Name: "India", Flag: "🇮🇳",
		Keywords: []string{"delhi", "mumbai", "bombay", "kolkata", "calcutta", "kerala", "bengal", "rajasthan"},
		Demonyms: []string{"indian"}},
	{ISO2: "BD", ISO3: "BGD", Name: "Bangladesh", Flag: "🇧🇩",
		Keywords: []string{"dhaka"},
		Demonyms: []string{"bangladeshi"}},
	{ISO2: "LK", ISO3: "LKA", Name: "Sri Lanka", Flag: "🇱🇰",
		Aliases:  []string{"ceylon"},
		Keywords: []string{"colombo"},
		Demonyms: []string{"sri lankan"}},
	{ISO2: "NP", ISO3: "NPL", Name: "Nepal", Flag: "🇳🇵",
		Keywords: []string{"kathmandu", "everest"},
		Demonyms: []string{"nepali", "nepalese"}},
	{ISO2: "MM", ISO3: "MMR", Name: "Myanmar", Flag: "🇲🇲",
		Aliases:  []string{"burma"},
		Keywords: []string{"yangon", "rangoon", "mandalay"},
		Demonyms: []string{"burmese"}},
	{ISO2: "TH", ISO3: "THA", Name: "Thailand", Flag: "🇹🇭",
		Aliases:  []string{"siam"},
		Keywords: []string{"bangkok", "chiang mai"},
		Demonyms: []string{"thai"}},
	{ISO2: "VN", ISO3: "VNM", Name: "Vietnam", Flag: "🇻🇳",
		Keywords: []string{"hanoi", "saigon", "ho chi minh city"},
		Demonyms: []string{"vietnamese"}},
	{ISO2: "KH", ISO3: "KHM", Name: "Cambodia", Flag: "🇰🇭",
		Keywords: []string{"phnom penh", "angkor"},
		Demonyms: []string{"cambodian", "khmer"}},
	{ISO2: "LA", ISO3: "LAO", Name: "Laos", Flag: "🇱🇦",
		Keywords: []string{"vientiane"},
		Demonyms: []string{"lao", "laotian"}},
	{ISO2: "MY", ISO3: "MYS", Name: "Malaysia", Flag: "🇲🇾",
		Keywords: []string{"kuala lumpur", "borneo", "penang"},
		Demonyms: []string{"malaysian"}},
	{ISO2: "SG", ISO3: "SGP", Name: "Singapore", Flag: "🇸🇬",
		Demonyms: []string{"singaporean"}},
	{ISO2: "ID", ISO3: "IDN", Name: "Indonesia", Flag: "🇮🇩",
		Keywords: []string{"jakarta", "bali", "java", "sumatra"},
		Demonyms: []string{"indonesian"}},
	{ISO2: "PH", ISO3: "PHL", Name: "Philippines", Flag: "🇵🇭",
		Keywords: []string{"manila"},
		Demonyms: []string{"filipino", "filipina"}},
	{ISO2: "CN", ISO3: "CHN", Name: "China", Flag: "🇨🇳",
		Aliases:  []string{"people's republic of china", "prc"},
		Keywords: []string{"beijing", "shanghai", "peking", "guangzhou", "shenzhen", "sichuan"},
		Demonyms: []string{"chinese"}},
	{ISO2: "TW", ISO3: "TWN", Name: "Taiwan", Flag: "🇹🇼",
		Aliases:  []string{"formosa", "republic of china"},
		Keywords: []string{"taipei"},
		Demonyms: []string{"taiwanese"}},
	{ISO2: "HK", ISO3: "HKG", Name: "Hong Kong", Flag: "🇭🇰",
		Keywords: []string{"kowloon"},
		Demonyms: []string{"hongkonger"}},
	{ISO2: "MN", ISO3: "MNG", Name: "Mongolia", Flag: "🇲🇳",
		Keywords: []string{"ulaanbaatar", "gobi"},
		Demonyms: []string{"mongolian"}},
	{ISO2: "KR", ISO3: "KOR", Name: "South Korea", Flag: "🇰🇷",
		Aliases:  []string{"republic of korea", "korea"},
		Keywords: []string{"seoul", "busan"},
		Demonyms: []string{"korean", "south korean"}},
	{ISO2: "KP", ISO3: "PRK", Name: "North Korea", Flag: "🇰🇵",
		Aliases:  []string{"dprk"},
		Keywords: []string{"pyongyang"},
		Demonyms: []string{"north korean"}},
	{ISO2: "JP", ISO3: "JPN", Name: "Japan", Flag: "🇯🇵",
		Keywords: []string{"tokyo", "kyoto", "osaka", "hokkaido", "okinawa"},
		Demonyms: []string{"japanese"}},
	{ISO2: "AU", ISO3: "AUS", Name: "Australia", Flag: "🇦🇺",
		Keywords: []string{"sydney", "melbourne", "outback", "queensland", "tasmania"},
		Demonyms: []string{"australian"}},
	{ISO2: "NZ", ISO3: "NZL", Name: "New Zealand", Flag: "🇳🇿",
		Aliases:  []string{"aotearoa"},
		Keywords: []string{"auckland", "wellington", "christchurch"},
		Demonyms: []string{"new zealander", "kiwi"}},
}
