package report

// flagByCode maps a calling code to its flag glyph, one entry per code.
// Codes shared between countries (+1, +7, +20, +262) resolve to the ITU
// primary assignee.
var flagByCode = map[string]string{
	"+973": "🇧🇭", // Bahrain
	"+966": "🇸🇦", // Saudi Arabia
	"+971": "🇦🇪", // UAE
	"+965": "🇰🇼", // Kuwait
	"+974": "🇶🇦", // Qatar
	"+968": "🇴🇲", // Oman
	"+962": "🇯🇴", // Jordan
	"+961": "🇱🇧", // Lebanon
	"+963": "🇸🇾", // Syria
	"+964": "🇮🇶", // Iraq
	"+98":  "🇮🇷", // Iran
	"+90":  "🇹🇷", // Turkey

	"+1":  "🇺🇸", // United States (also Canada)
	"+44": "🇬🇧", // United Kingdom
	"+33": "🇫🇷", // France
	"+49": "🇩🇪", // Germany
	"+39": "🇮🇹", // Italy
	"+34": "🇪🇸", // Spain
	"+31": "🇳🇱", // Netherlands
	"+46": "🇸🇪", // Sweden
	"+47": "🇳🇴", // Norway
	"+45": "🇩🇰", // Denmark
	"+41": "🇨🇭", // Switzerland
	"+43": "🇦🇹", // Austria
	"+32": "🇧🇪", // Belgium

	"+351": "🇵🇹", // Portugal
	"+30":  "🇬🇷", // Greece
	"+48":  "🇵🇱", // Poland
	"+420": "🇨🇿", // Czech Republic
	"+36":  "🇭🇺", // Hungary
	"+40":  "🇷🇴", // Romania
	"+359": "🇧🇬", // Bulgaria
	"+385": "🇭🇷", // Croatia
	"+386": "🇸🇮", // Slovenia
	"+421": "🇸🇰", // Slovakia
	"+370": "🇱🇹", // Lithuania
	"+371": "🇱🇻", // Latvia
	"+372": "🇪🇪", // Estonia
	"+358": "🇫🇮", // Finland
	"+353": "🇮🇪", // Ireland
	"+352": "🇱🇺", // Luxembourg
	"+356": "🇲🇹", // Malta
	"+357": "🇨🇾", // Cyprus

	"+7":  "🇷🇺", // Russia (also Kazakhstan)
	"+86": "🇨🇳", // China
	"+81": "🇯🇵", // Japan
	"+82": "🇰🇷", // South Korea
	"+65": "🇸🇬", // Singapore
	"+60": "🇲🇾", // Malaysia
	"+66": "🇹🇭", // Thailand
	"+84": "🇻🇳", // Vietnam
	"+63": "🇵🇭", // Philippines
	"+62": "🇮🇩", // Indonesia

	"+91":  "🇮🇳", // India
	"+92":  "🇵🇰", // Pakistan
	"+880": "🇧🇩", // Bangladesh
	"+94":  "🇱🇰", // Sri Lanka
	"+977": "🇳🇵", // Nepal
	"+975": "🇧🇹", // Bhutan
	"+960": "🇲🇻", // Maldives
	"+93":  "🇦🇫", // Afghanistan

	"+998": "🇺🇿", // Uzbekistan
	"+996": "🇰🇬", // Kyrgyzstan
	"+992": "🇹🇯", // Tajikistan
	"+993": "🇹🇲", // Turkmenistan
	"+976": "🇲🇳", // Mongolia
	"+850": "🇰🇵", // North Korea
	"+886": "🇹🇼", // Taiwan
	"+852": "🇭🇰", // Hong Kong
	"+853": "🇲🇴", // Macau

	"+55": "🇧🇷", // Brazil
	"+54": "🇦🇷", // Argentina
	"+56": "🇨🇱", // Chile
	"+57": "🇨🇴", // Colombia
	"+51": "🇵🇪", // Peru
	"+58": "🇻🇪", // Venezuela
	"+52": "🇲🇽", // Mexico
	"+61": "🇦🇺", // Australia
	"+64": "🇳🇿", // New Zealand

	"+27":  "🇿🇦", // South Africa
	"+234": "🇳🇬", // Nigeria
	"+254": "🇰🇪", // Kenya
	"+20":  "🇪🇬", // Egypt
	"+212": "🇲🇦", // Morocco
	"+213": "🇩🇿", // Algeria
	"+216": "🇹🇳", // Tunisia
	"+218": "🇱🇾", // Libya
	"+249": "🇸🇩", // Sudan
	"+251": "🇪🇹", // Ethiopia
	"+255": "🇹🇿", // Tanzania
	"+256": "🇺🇬", // Uganda
	"+250": "🇷🇼", // Rwanda
	"+257": "🇧🇮", // Burundi
	"+258": "🇲🇿", // Mozambique
	"+260": "🇿🇲", // Zambia
	"+263": "🇿🇼", // Zimbabwe
	"+264": "🇳🇦", // Namibia
	"+267": "🇧🇼", // Botswana
	"+268": "🇸🇿", // Eswatini
	"+266": "🇱🇸", // Lesotho
	"+265": "🇲🇼", // Malawi
	"+261": "🇲🇬", // Madagascar
	"+230": "🇲🇺", // Mauritius
	"+248": "🇸🇨", // Seychelles
	"+269": "🇰🇲", // Comoros
	"+262": "🇷🇪", // Réunion (also Mayotte)

	"+590": "🇬🇵", // Guadeloupe
	"+596": "🇲🇶", // Martinique
	"+594": "🇬🇫", // French Guiana
	"+508": "🇵🇲", // Saint Pierre and Miquelon

	"Unknown": "❓",
}

// Flag returns the flag glyph for a calling code, or a globe for codes the
// table does not know.
func Flag(code string) string {
	if flag, ok := flagByCode[code]; ok {
		return flag
	}
	return "🌍"
}
