package review

import (
	"strings"

	"catalogseed/internal/catalog"
)

// Template interpolation points.
const (
	placeholderPrimary = "{ing}"
	placeholderPhrase  = "{ings}"
)

// Style picks a family of comment and suffix tables.
type Style string

const (
	// StyleIngredient uses English/Hinglish templates that mention the
	// product's ingredients.
	StyleIngredient Style = "ingredient"
	// StyleClassic uses static multilingual comments extended per type.
	StyleClassic Style = "classic"
)

// ParseStyle accepts "ingredient" or "classic".
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleIngredient:
		return StyleIngredient, true
	case StyleClassic:
		return StyleClassic, true
	}
	return "", false
}

// Pool holds the short and long comment candidates for one product.
type Pool struct {
	Short []string
	Long  []string
}

// Comments returns the product's pool with interpolation points filled in.
func Comments(style Style, p catalog.Product) Pool {
	var tmpl Pool
	switch style {
	case StyleClassic:
		tmpl = classicPool(KindOf(p.Category, p.Type))
	default:
		tmpl = ingredientPool(KindOf(p.Category, p.Type))
	}
	r := strings.NewReplacer(
		placeholderPhrase, catalog.IngredientPhrase(p.Ingredients),
		placeholderPrimary, catalog.PrimaryIngredient(p.Ingredients),
	)
	return Pool{Short: render(r, tmpl.Short), Long: render(r, tmpl.Long)}
}

func render(r *strings.Replacer, templates []string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = r.Replace(t)
	}
	return out
}

// Suffixes returns the closing phrases a style may append to a comment.
func Suffixes(style Style) []string {
	if style == StyleClassic {
		return classicSuffixes
	}
	return ingredientSuffixes
}

func ingredientPool(k Kind) Pool {
	switch k {
	case KindFaceCleanser:
		return faceCleanserTemplates
	case KindFaceScrub:
		return faceScrubTemplates
	case KindFaceSerum:
		return faceSerumTemplates
	case KindFaceMoisturizer:
		return faceMoisturizerTemplates
	case KindFaceCream:
		return faceCreamTemplates
	case KindFaceMask:
		return faceMaskTemplates
	case KindFaceAcne, KindFaceOther:
		return faceOtherTemplates
	case KindHairShampoo:
		return hairShampooTemplates
	case KindHairMask:
		return hairMaskTemplates
	case KindHairOil:
		return hairOilTemplates
	case KindHairOther:
		return hairOtherTemplates
	case KindBodyLotion, KindBodyOther:
		return bodyTemplates
	case KindComboAcne:
		return comboAcneTemplates
	case KindComboFace, KindComboHair, KindComboOther:
		return comboTemplates
	default:
		return faceOtherTemplates
	}
}

// classicPool starts from the category's base pool and appends the
// type-specific short comments.
func classicPool(k Kind) Pool {
	var base Pool
	var extra []string
	switch k {
	case KindFaceCleanser, KindFaceScrub, KindFaceSerum, KindFaceMoisturizer, KindFaceCream, KindFaceMask, KindFaceAcne, KindFaceOther:
		base = classicFace
		extra = map[Kind][]string{
			KindFaceScrub:    classicScrub,
			KindFaceMask:     classicMask,
			KindFaceSerum:    classicSerum,
			KindFaceCleanser: classicCleanser,
			KindFaceCream:    classicCream,
			KindFaceAcne:     classicAcne,
		}[k]
	case KindHairShampoo, KindHairMask, KindHairOil, KindHairOther:
		base = classicHair
		extra = map[Kind][]string{
			KindHairOil:     classicOil,
			KindHairShampoo: classicShampoo,
			KindHairMask:    classicHair.Short,
		}[k]
	case KindBodyLotion, KindBodyOther:
		base = classicBody
		if k == KindBodyLotion {
			extra = classicLotion
		}
	case KindComboAcne, KindComboFace, KindComboHair, KindComboOther:
		base = classicCombo
		extra = map[Kind][]string{
			KindComboAcne: classicAcne,
			KindComboFace: classicFace.Short[:4],
			KindComboHair: classicHair.Short[:4],
		}[k]
	default:
		base = classicFace
	}
	short := make([]string, 0, len(base.Short)+len(extra))
	short = append(short, base.Short...)
	short = append(short, extra...)
	return Pool{Short: short, Long: base.Long}
}

var ingredientSuffixes = []string{
	"Will repurchase.",
	"Definitely recommend!",
	"Definitely worth it!",
	"Will buy again.",
	"Highly recommend!",
	"Must try!",
	"Phir se order karungi.",
	"Zaroor suggest karungi.",
	"Bahut accha hai, recommend karti hoon.",
}

var classicSuffixes = []string{
	"Will repurchase.",
	"फिर खरीदूंगी।",
	"Definitely recommend!",
	"नक्की परत घेतले जाईल.",
	"ફરીથી ખરીદીશું.",
	"আবার কিনব।",
	"मैं दोबारा जरूर खरीदूंगी।",
	"Definitely worth it!",
}

var faceCleanserTemplates = Pool{
	Short: []string{
		"Gentle cleansing with {ing}, removes dirt without stripping moisture.",
		"Daily use se skin clean aur fresh rehti hai. {ing} ka effect visible hai.",
		"Foam achha hai aur {ing} se pores clear ho rahe hain.",
		"Perfect for sensitive skin, {ing} ka soothing effect hai.",
		"Doesn't leave skin dry, very gentle formula.",
		"My oily skin feels balanced after using this.",
	},
	Long: []string{
		"Using this cleanser for 2 weeks now. The {ings} extracts make my skin feel so clean and fresh. It removes all dirt and makeup without over-drying. Skin texture has improved significantly.",
		"Gentle yet effective! {ing} helps in deep cleansing and my skin feels hydrated. Perfect for daily use, especially for combination skin like mine.",
		"Kaafi gentle hai yeh cleanser. {ing} se skin purifying hoti hai aur breakouts bhi kam hue. Will definitely repurchase!",
	},
}

var faceScrubTemplates = Pool{
	Short: []string{
		"Gentle exfoliation with {ing} and natural extracts. Skin feels smooth after use.",
		"Dead skin cells remove ho rahe hain, texture better hai. {ing} ka glow visible hai.",
		"Not too harsh, perfect balance. {ing} se skin brightening ho rahi hai.",
		"Regular use se skin glow badh gaya hai.",
		"My favorite scrub! Doesn't irritate my sensitive skin.",
	},
	Long: []string{
		"Love this scrub! The {ings} work so well together for exfoliation. My skin feels smooth and looks brighter. Using twice a week and seeing great results.",
		"{ing} extract se skin exfoliation gentle hai but effective. Pores clear ho gaye hain aur texture improve hua hai. Highly recommend!",
	},
}

var faceSerumTemplates = Pool{
	Short: []string{
		"Lightweight serum with {ing}, absorbs quickly without feeling sticky.",
		"Fine lines kam ho rahe hain, {ing} se skin hydrated hai.",
		"Antioxidant benefits from {ing} noticeable hain, skin healthy lagti hai.",
		"Skin glow badh gaya hai, texture smooth ho gayi.",
		"Perfect for daily use, non-greasy formula.",
	},
	Long: []string{
		"Amazing serum! The {ings} extracts provide excellent hydration and my skin looks more radiant. It absorbs quickly and doesn't feel heavy. Using for a month and seeing visible improvement in fine lines.",
		"{ing} se skin ko antioxidants mil rahe hain aur hydration bhi perfect hai. Texture improve hua hai aur glow visible hai. Worth every penny!",
	},
}

var faceMoisturizerTemplates = Pool{
	Short: []string{
		"Perfect hydration with {ing}. Skin feels soft all day.",
		"Moisturization all day rehti hai, {ing} se texture smooth hai.",
		"Non-greasy formula, {ing} ka nourishing effect hai.",
		"Lightweight but effective, perfect for daily use.",
		"My dry skin loves this moisturizer!",
	},
	Long: []string{
		"Best moisturizer I've used! The {ings} keep my skin hydrated throughout the day. It's lightweight, absorbs well, and doesn't feel greasy. Perfect for combination skin.",
		"{ing} se skin ko proper hydration mil rahi hai aur texture bhi improve hua hai. All day moisturization rehti hai without feeling heavy. Highly recommend!",
	},
}

var faceCreamTemplates = Pool{
	Short: []string{
		"Rich cream with {ing} and nourishing ingredients. Perfect for dry skin.",
		"Moisturization perfect hai, {ing} se skin soft lagti hai.",
		"Non-greasy formula, {ing} ka anti-aging effect visible hai.",
		"Skin feels plump and hydrated all day.",
		"Great for night time routine!",
	},
	Long: []string{
		"Love this cream! The {ings} extracts along with other nourishing ingredients make my skin feel so soft and hydrated. Using in my night routine and waking up with glowing skin.",
		"{ing} se skin ko deep nourishment mil rahi hai. Texture improve hua hai aur fine lines bhi kam ho rahe hain. Perfect for mature skin!",
	},
}

var faceMaskTemplates = Pool{
	Short: []string{
		"Deep cleansing mask with {ing}. Pores clear ho gaye hain.",
		"Detox effect achha hai, {ing} se skin fresh feel hoti hai.",
		"Weekly use se skin texture improve hua hai, {ing} ka glow visible hai.",
		"My skin feels refreshed and clean after use.",
		"Perfect for weekly pampering session!",
	},
	Long: []string{
		"Amazing mask! The {ings} extracts provide deep cleansing and my pores look so much cleaner. Using once a week and my skin feels refreshed and bright. Highly effective!",
		"{ing} se skin detoxification ho rahi hai aur pores bhi clear ho rahe hain. Weekly use se glow improve hua hai. Love this product!",
	},
}

var faceOtherTemplates = Pool{
	Short: []string{
		"Great product with {ing}. Skin feels better already.",
		"{ing} se skin glow badh gaya hai.",
		"Amazing results, will buy again.",
		"Perfect for my skin type.",
	},
	Long: []string{
		"Using this product for a few weeks and seeing great results. The {ings} extracts work really well for my skin. Texture and glow have improved significantly.",
		"{ing} se skin ko proper care mil rahi hai. Results dikh rahe hain aur skin healthy lagti hai. Definitely worth it!",
	},
}

var hairShampooTemplates = Pool{
	Short: []string{
		"Hair fall control mein effective hai. {ing} se hair strength badh gayi.",
		"Lather good hai, {ing} se hair clean aur soft ho jaati hain.",
		"Regular use se scalp healthy hai, {ing} ka nourishing effect hai.",
		"Hair feels strong and shiny after wash.",
		"Perfect for daily use, doesn't strip natural oils.",
	},
	Long: []string{
		"Best shampoo! The {ings} extracts have significantly reduced my hair fall. Hair feels stronger and looks shinier. Using for 2 months and seeing amazing results.",
		"{ing} se hair ko proper nourishment mil rahi hai. Hair fall kam hua hai aur texture bhi improve hua hai. Scalp healthy feel hota hai. Highly recommend!",
	},
}

var hairMaskTemplates = Pool{
	Short: []string{
		"Hair mask with {ing} and nourishing oils. Hair soft aur shiny ho gaye.",
		"Deep conditioning effect hai, {ing} se hair hydrated lagti hain.",
		"Weekly use se hair texture improve hua hai, {ing} ka shine visible hai.",
		"My hair feels silky smooth after use.",
		"Perfect treatment for damaged hair!",
	},
	Long: []string{
		"Love this hair mask! The {ings} extracts along with other nourishing ingredients make my hair so soft and manageable. Using once a week and my damaged hair has improved a lot.",
		"{ing} se hair ko deep conditioning mil rahi hai. Hair soft aur shiny ho gaye hain aur breakage bhi kam hui. Perfect for dry and damaged hair!",
	},
}

var hairOilTemplates = Pool{
	Short: []string{
		"Hair growth ke liye perfect, {ing} se regular massage se fayda.",
		"Oil non-sticky hai, {ing} se hair nourished feel hoti hain.",
		"Scalp health improve hua hai, {ing} ka strengthening effect hai.",
		"Hair fall kam hua hai, growth visible hai.",
		"Lightweight oil, perfect for hair massage.",
	},
	Long: []string{
		"Amazing hair oil! The {ings} extracts promote hair growth and my hair feels so much stronger. Using for 3 months with regular massage and seeing significant improvement in hair fall and growth.",
		"{ing} se scalp ko proper nourishment mil rahi hai. Hair fall kam hua hai aur new hair growth bhi visible hai. Oil lightweight hai aur sticky feel nahi hota. Highly effective!",
	},
}

var hairOtherTemplates = Pool{
	Short: []string{
		"Hair care product with {ing}. Hair healthier lagti hain.",
		"{ing} se hair strength badh gayi.",
		"Great results, will continue using.",
		"Perfect for my hair type.",
	},
	Long: []string{
		"Using this hair product for a while and loving the results. The {ings} extracts work really well. My hair feels healthier and stronger.",
		"{ing} se hair ko proper care mil rahi hai. Texture improve hua hai aur hair fall bhi kam hua hai. Definitely recommend!",
	},
}

var bodyTemplates = Pool{
	Short: []string{
		"Body lotion with {ing}. Skin soft ho gayi hai, good moisturization.",
		"Body par apply karne se smooth feel hota hai, {ing} ka hydrating effect hai.",
		"Absorption quick hai, {ing} se skin nourished lagti hai.",
		"Lightweight formula, perfect for daily use.",
		"Skin feels hydrated all day long.",
	},
	Long: []string{
		"Great body lotion! The {ings} extracts keep my skin soft and hydrated. It absorbs quickly without feeling sticky. Perfect for daily use after shower.",
		"{ing} se body skin ko proper hydration mil rahi hai. Texture improve hua hai aur skin soft aur smooth lagti hai. Non-greasy formula, highly recommend!",
	},
}

var comboAcneTemplates = Pool{
	Short: []string{
		"Acne control combo with {ing}. Breakouts kam ho gaye, skin clear ho rahi hai.",
		"Oily skin ke liye perfect, {ing} se oil control achha hai.",
		"Inflammation reduce hua hai, {ing} se skin calming feel hoti hai.",
		"Complete routine, sab products ek saath perfect kaam kar rahe hain.",
		"Acne marks bhi fade ho rahe hain, great combo!",
	},
	Long: []string{
		"Amazing combo pack! The {ings} extracts along with other acne-fighting ingredients have cleared my breakouts significantly. Using the complete routine for a month and my skin looks so much better. Highly effective!",
		"{ing} se acne control mein bahut help mili hai. All products complement each other perfectly. Breakouts kam ho gaye hain aur skin clear ho rahi hai. Value for money!",
	},
}

var comboTemplates = Pool{
	Short: []string{
		"Complete routine with {ing}. All products work well together.",
		"Value for money combo, {ing} se results dikh rahe hain.",
		"Combination perfect hai, {ing} ka effect visible hai.",
		"Great combo pack! All products complement each other.",
		"Complete skincare routine, sab kuch ek saath!",
	},
	Long: []string{
		"Perfect combo! All products with {ings} extracts work so well together. Using the complete routine has given amazing results. My skin/hair has improved noticeably with regular use. Highly recommend!",
		"{ing} se complete routine effective hai. All products complement each other and results dikh rahe hain. Value for money hai aur quality bhi excellent. Definitely worth it!",
	},
}

var classicFace = Pool{
	Short: []string{
		"Amazing product! My skin feels so much better after just one week.",
		"Works well, will buy again.",
		"बहुत बढ़िया प्रोडक्ट! मेरी त्वचा नरम हुई।",
		"सेंट कम और असरदार।",
		"Kaafi acha laga, texture smooth hai.",
		"Skin glow badh gaya hai.",
		"Acne kam ho rahe hain.",
		"Moisturization perfect hai.",
	},
	Long: []string{
		"I've been using this for a month. The texture is light and it absorbed well. Saw noticeable improvement in hydration and glow.",
		"Detailed results: reduced oiliness, fewer breakouts, skin tone more even. Packaging is neat and travel-friendly.",
		"मैंने 3 सप्ताह से इस्तेमाल किया है। झुर्रियाँ थोड़ी कम दिख रही हैं और नमी बनी रहती है। खुश हूँ।",
		"Use karne ke baad breakouts kam hue, aur skin hydrated lagti hai. Fragrance mild hai.",
		"My skin feels cleaner and brighter. The product is gentle and doesn't cause any irritation.",
		"Noticed improvement in skin texture and reduced fine lines. Great value for money.",
		"त्वचा में चमक आ गई है और नमी बनी रहती है। बहुत अच्छा लग रहा है।",
	},
}

var classicHair = Pool{
	Short: []string{
		"Hair fall kam ho raha hai, good product!",
		"Hair soft aur shiny ho gaye hain.",
		"बाल मजबूत हुए हैं और झड़ने कम हो गए।",
		"Hair texture improve hua hai.",
		"Dandruff control mein helpful hai.",
		"बालों में चमक आ गई है।",
	},
	Long: []string{
		"Using this for 2 months, hair fall reduced significantly. Hair feels stronger and shinier.",
		"Great results! Hair became soft, manageable and less frizzy. Will definitely repurchase.",
		"मैंने 6 सप्ताह से इस्तेमाल किया है। बाल मजबूत हुए हैं और रूखापन कम हुआ है।",
		"Hair growth noticeable hai aur scalp bhi healthy feel hota hai. Recommended!",
		"Hair volume badh gaya hai aur dandruff problem bhi solve ho gayi.",
		"बालों में चमक और मजबूती आई है। नियमित उपयोग से फायदा दिख रहा है।",
	},
}

var classicBody = Pool{
	Short: []string{
		"Skin soft ho gayi hai, good moisturization.",
		"Body par apply karne se smooth feel hota hai.",
		"त्वचा कोमल हो गई है।",
		"Absorption quick hai, sticky feel nahi hota.",
	},
	Long: []string{
		"Great moisturizer for body. Skin feels soft and hydrated all day. Non-greasy formula.",
		"Using daily after bath, skin texture improved significantly. Light fragrance is pleasant.",
		"शरीर की त्वचा में नमी बनी रहती है और कोमलता आई है। रोजाना उपयोग करने से फायदा दिख रहा है।",
	},
}

var classicCombo = Pool{
	Short: []string{
		"Complete routine, sab kuch ek saath!",
		"Value for money, all products work well together.",
		"पूरा सेट बहुत अच्छा है, हर प्रोडक्ट अच्छी तरह काम कर रहा है।",
		"Combination perfect hai, results dikh rahe hain.",
	},
	Long: []string{
		"Great combo pack! All products complement each other. Using the complete routine has given amazing results.",
		"Value for money! The combination works really well. My skin/hair improved noticeably with regular use of the full routine.",
		"सभी प्रोडक्ट एक साथ बहुत अच्छा काम कर रहे हैं। नियमित उपयोग से परिणाम दिख रहे हैं।",
	},
}

var classicScrub = []string{
	"Gentle exfoliation, skin feels smooth after use.",
	"Dead skin cells remove ho rahe hain, texture better hai.",
	"बहुत ही नरम स्क्रब है, रोम छिद्र साफ हो गए हैं।",
	"Regular use se skin glow badh gaya hai.",
}

var classicMask = []string{
	"Deep cleansing, pores clear ho gaye hain.",
	"Detox effect achha hai, skin fresh feel hoti hai.",
	"मास्क लगाने के बाद त्वचा साफ और चमकदार लगती है।",
	"Weekly use se skin texture improve hua hai.",
}

var classicSerum = []string{
	"Lightweight serum, absorbs quickly without feeling sticky.",
	"Fine lines kam ho rahe hain, skin hydrated hai.",
	"सीरम हल्का है और जल्दी अवशोषित हो जाता है। त्वचा में नमी बनी रहती है।",
	"Antioxidant benefits noticeable hain, skin healthy lagti hai.",
}

var classicCleanser = []string{
	"Gentle cleansing, removes dirt without stripping moisture.",
	"Daily use karne se skin clean aur fresh rehti hai.",
	"फेश वॉश बहुत नरम है, त्वचा को साफ करता है बिना रूखापन लाए।",
	"Foam achha hai aur rinse easily hota hai.",
}

var classicCream = []string{
	"Non-greasy cream, perfect for daily use.",
	"Moisturization all day rehti hai, texture smooth hai.",
	"क्रीम हल्की है और त्वचा में जल्दी अवशोषित हो जाती है।",
	"SPF wala cream hai, daily protection milti hai.",
}

var classicOil = []string{
	"Hair growth ke liye perfect, regular massage se fayda.",
	"Oil non-sticky hai, hair nourished feel hoti hain.",
	"बालों में तेल लगाने से मजबूती आई है और झड़ना कम हुआ है।",
	"Scalp health improve hua hai, dandruff kam hui.",
}

var classicLotion = []string{
	"Anti-aging benefits noticeable hain, skin firm lagti hai.",
	"Wine extract se skin bright aur smooth ho gayi.",
	"लोशन लगाने से त्वचा में कसावट आई है और चमक बढ़ी है।",
	"Lightweight formula, perfect for face and body.",
}

var classicShampoo = []string{
	"Hair fall control mein effective hai.",
	"Lather good hai, hair clean aur soft ho jaati hain.",
	"शैंपू बालों को अच्छी तरह साफ करता है और चमक देता है।",
	"Regular use se scalp healthy hai aur dandruff free.",
}

var classicAcne = []string{
	"Acne control mein bahut effective, breakouts kam ho gaye.",
	"Oily skin ke liye perfect, oil control achha hai.",
	"मुँहासे कम हो रहे हैं और त्वचा साफ हो रही है।",
	"Inflammation reduce hua hai, skin calming feel hoti hai.",
}
