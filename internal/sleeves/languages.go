package sleeves

// language is one catalog row: an ISO 639-1 code plus the surface names
// (English and Dutch where they differ) a posting might use for it.
type language struct {
	code  string
	names []string
}

var languageRequiredMarkers = []string{
	"required",
	"must have",
	"mandatory",
	"fluent",
	"native",
	"c1",
	"c2",
	"vereist",
	"verplicht",
	"moet",
	"vloeiend",
	"moedertaal",
	"b2",
	"c1-niveau",
	"c2-niveau",
}

var languageCatalog = []language{
	{"en", []string{"english", "engels"}},
	{"nl", []string{"dutch", "nederlands"}},
	{"de", []string{"german", "duits", "deutsch"}},
	{"fr", []string{"french", "frans", "francais"}},
	{"es", []string{"spanish", "spaans", "espanol"}},
	{"it", []string{"italian", "italiaans"}},
	{"pt", []string{"portuguese", "portugees"}},
	{"pl", []string{"polish", "pools"}},
	{"cs", []string{"czech", "tsjechisch"}},
	{"ro", []string{"romanian", "roemeens"}},
	{"hu", []string{"hungarian", "hongaars"}},
	{"sv", []string{"swedish", "zweeds"}},
	{"no", []string{"norwegian", "noors"}},
	{"da", []string{"danish", "deens"}},
	{"fi", []string{"finnish", "fins"}},
	{"tr", []string{"turkish", "turks"}},
	{"ru", []string{"russian", "russisch"}},
	{"uk", []string{"ukrainian", "oekraiens"}},
	{"ar", []string{"arabic", "arabisch"}},
	{"he", []string{"hebrew", "hebreeuws"}},
	{"fa", []string{"persian", "perzisch", "farsi"}},
	{"hi", []string{"hindi"}},
	{"ur", []string{"urdu"}},
	{"bn", []string{"bengali", "bengaals"}},
	{"ta", []string{"tamil"}},
	{"te", []string{"telugu"}},
	{"ja", []string{"japanese", "japans"}},
	{"ko", []string{"korean", "koreaans"}},
	{"zh", []string{"chinese", "chinees", "mandarin", "cantonese"}},
	{"vi", []string{"vietnamese", "vietnamees"}},
	{"th", []string{"thai", "thais"}},
	{"id", []string{"indonesian", "indonesisch"}},
	{"ms", []string{"malay", "maleis"}},
	{"tl", []string{"tagalog", "filipino"}},
	{"sw", []string{"swahili"}},
	{"am", []string{"amharic", "amhaars"}},
	{"so", []string{"somali", "somalisch"}},
	{"el", []string{"greek", "grieks"}},
	{"bg", []string{"bulgarian", "bulgaars"}},
	{"sr", []string{"serbian", "servisch"}},
	{"hr", []string{"croatian", "kroatisch"}},
	{"sl", []string{"slovenian", "sloveens"}},
	{"sk", []string{"slovak", "slowaaks"}},
	{"lt", []string{"lithuanian", "litouws"}},
	{"lv", []string{"latvian", "lets"}},
	{"et", []string{"estonian", "estisch"}},
	{"ga", []string{"irish", "iers"}},
	{"cy", []string{"welsh"}},
	{"is", []string{"icelandic", "ijslands"}},
	{"mt", []string{"maltese", "maltees"}},
	{"ca", []string{"catalan", "catalaans"}},
	{"eu", []string{"basque", "baskisch"}},
	{"gl", []string{"galician", "galicisch"}},
	{"af", []string{"afrikaans"}},
	{"zu", []string{"zulu"}},
	{"xh", []string{"xhosa"}},
	{"yo", []string{"yoruba"}},
	{"ha", []string{"hausa"}},
	{"ig", []string{"igbo"}},
	{"sq", []string{"albanian", "albanees"}},
	{"aa", []string{"afar"}},
	{"ab", []string{"abkhazian", "abkhaz"}},
	{"ae", []string{"avestan"}},
	{"ak", []string{"akan"}},
	{"an", []string{"aragonese"}},
	{"as", []string{"assamese"}},
	{"av", []string{"avaric", "avar"}},
	{"ay", []string{"aymara"}},
	{"az", []string{"azerbaijani", "azeri"}},
	{"ba", []string{"bashkir"}},
	{"bh", []string{"bihari"}},
	{"bi", []string{"bislama"}},
	{"bm", []string{"bambara"}},
	{"bo", []string{"tibetan"}},
	{"br", []string{"breton"}},
	{"bs", []string{"bosnian"}},
	{"ce", []string{"chechen"}},
	{"ch", []string{"chamorro"}},
	{"co", []string{"corsican"}},
	{"cr", []string{"cree"}},
	{"cu", []string{"church slavic", "old slavonic"}},
	{"cv", []string{"chuvash"}},
	{"dv", []string{"divehi", "maldivian"}},
	{"dz", []string{"dzongkha"}},
	{"ee", []string{"ewe"}},
	{"eo", []string{"esperanto"}},
	{"ff", []string{"fulah", "fulfulde"}},
	{"fj", []string{"fijian"}},
	{"fo", []string{"faroese"}},
	{"fy", []string{"frisian", "western frisian"}},
	{"gd", []string{"scottish gaelic", "gaelic"}},
	{"gn", []string{"guarani"}},
	{"gu", []string{"gujarati"}},
	{"gv", []string{"manx"}},
	{"ho", []string{"hiri motu"}},
	{"hy", []string{"armenian"}},
	{"hz", []string{"herero"}},
	{"ia", []string{"interlingua"}},
	{"ie", []string{"interlingue"}},
	{"ii", []string{"sichuan yi", "yi"}},
	{"ik", []string{"inupiaq"}},
	{"io", []string{"ido"}},
	{"iu", []string{"inuktitut"}},
	{"jv", []string{"javanese"}},
	{"ka", []string{"georgian"}},
	{"kg", []string{"kongo"}},
	{"ki", []string{"kikuyu"}},
	{"kj", []string{"kuanyama"}},
	{"kk", []string{"kazakh"}},
	{"kl", []string{"kalaallisut", "greenlandic"}},
	{"km", []string{"khmer", "cambodian"}},
	{"kn", []string{"kannada"}},
	{"kr", []string{"kanuri"}},
	{"ks", []string{"kashmiri"}},
	{"ku", []string{"kurdish"}},
	{"kv", []string{"komi"}},
	{"kw", []string{"cornish"}},
	{"ky", []string{"kyrgyz", "kirghiz"}},
	{"la", []string{"latin"}},
	{"lb", []string{"luxembourgish", "letzeburgesch"}},
	{"lg", []string{"ganda", "luganda"}},
	{"li", []string{"limburgan", "limburgish"}},
	{"ln", []string{"lingala"}},
	{"lo", []string{"lao"}},
	{"lu", []string{"luba-katanga"}},
	{"mg", []string{"malagasy"}},
	{"mh", []string{"marshallese"}},
	{"mi", []string{"maori"}},
	{"mk", []string{"macedonian"}},
	{"ml", []string{"malayalam"}},
	{"mn", []string{"mongolian"}},
	{"mr", []string{"marathi"}},
	{"my", []string{"burmese", "myanmar"}},
	{"na", []string{"nauru"}},
	{"nb", []string{"norwegian bokmal", "bokmal"}},
	{"nd", []string{"north ndebele"}},
	{"ne", []string{"nepali"}},
	{"ng", []string{"ndonga"}},
	{"nn", []string{"norwegian nynorsk", "nynorsk"}},
	{"nr", []string{"south ndebele"}},
	{"nv", []string{"navajo"}},
	{"ny", []string{"chichewa", "nyanja"}},
	{"oc", []string{"occitan"}},
	{"oj", []string{"ojibwa", "ojibwe"}},
	{"om", []string{"oromo"}},
	{"or", []string{"odia", "oriya"}},
	{"os", []string{"ossetian"}},
	{"pa", []string{"punjabi", "panjabi"}},
	{"pi", []string{"pali"}},
	{"ps", []string{"pashto", "pushto"}},
	{"qu", []string{"quechua"}},
	{"rm", []string{"romansh"}},
	{"rn", []string{"rundi"}},
	{"rw", []string{"kinyarwanda"}},
	{"sa", []string{"sanskrit"}},
	{"sc", []string{"sardinian"}},
	{"sd", []string{"sindhi"}},
	{"se", []string{"northern sami"}},
	{"sg", []string{"sango"}},
	{"si", []string{"sinhala", "sinhalese"}},
	{"sm", []string{"samoan"}},
	{"sn", []string{"shona"}},
	{"ss", []string{"swati"}},
	{"st", []string{"southern sotho", "sotho"}},
	{"su", []string{"sundanese"}},
	{"tg", []string{"tajik"}},
	{"ti", []string{"tigrinya"}},
	{"tk", []string{"turkmen"}},
	{"tn", []string{"tswana"}},
	{"to", []string{"tonga"}},
	{"ts", []string{"tsonga"}},
	{"tt", []string{"tatar"}},
	{"tw", []string{"twi"}},
	{"ty", []string{"tahitian"}},
	{"ug", []string{"uighur", "uyghur"}},
	{"uz", []string{"uzbek"}},
	{"ve", []string{"venda"}},
	{"vo", []string{"volapuk"}},
	{"wa", []string{"walloon"}},
	{"wo", []string{"wolof"}},
	{"yi", []string{"yiddish"}},
	{"za", []string{"zhuang"}},
}
