package review

import "catalogseed/internal/catalog"

// Kind selects a comment pool. Every (category, type) pair maps to exactly
// one Kind through KindOf.
type Kind int

const (
	KindGeneric Kind = iota
	KindFaceCleanser
	KindFaceScrub
	KindFaceSerum
	KindFaceMoisturizer
	KindFaceCream
	KindFaceMask
	KindFaceAcne
	KindFaceOther
	KindHairShampoo
	KindHairMask
	KindHairOil
	KindHairOther
	KindBodyLotion
	KindBodyOther
	KindComboAcne
	KindComboFace
	KindComboHair
	KindComboOther
)

var kindNames = map[Kind]string{
	KindGeneric:         "generic",
	KindFaceCleanser:    "face/cleanser",
	KindFaceScrub:       "face/scrub",
	KindFaceSerum:       "face/serum",
	KindFaceMoisturizer: "face/moisturizer",
	KindFaceCream:       "face/cream",
	KindFaceMask:        "face/mask",
	KindFaceAcne:        "face/acne",
	KindFaceOther:       "face/*",
	KindHairShampoo:     "hair/shampoo",
	KindHairMask:        "hair/mask",
	KindHairOil:         "hair/oil",
	KindHairOther:       "hair/*",
	KindBodyLotion:      "body/lotion",
	KindBodyOther:       "body/*",
	KindComboAcne:       "combo/acne",
	KindComboFace:       "combo/face",
	KindComboHair:       "combo/hair",
	KindComboOther:      "combo/*",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// KindOf maps a category and type onto a comment pool kind. Types a category
// has no dedicated pool for land on that category's catch-all kind, and
// unknown categories land on KindGeneric.
func KindOf(c catalog.Category, t catalog.Type) Kind {
	switch c {
	case catalog.CategoryFace:
		switch t {
		case catalog.TypeCleanser:
			return KindFaceCleanser
		case catalog.TypeScrub:
			return KindFaceScrub
		case catalog.TypeSerum:
			return KindFaceSerum
		case catalog.TypeMoisturizer:
			return KindFaceMoisturizer
		case catalog.TypeCream:
			return KindFaceCream
		case catalog.TypeMask:
			return KindFaceMask
		case catalog.TypeAcne:
			return KindFaceAcne
		default:
			return KindFaceOther
		}
	case catalog.CategoryHair:
		switch t {
		case catalog.TypeShampoo:
			return KindHairShampoo
		case catalog.TypeMask:
			return KindHairMask
		case catalog.TypeOil:
			return KindHairOil
		default:
			return KindHairOther
		}
	case catalog.CategoryBody:
		if t == catalog.TypeLotion {
			return KindBodyLotion
		}
		return KindBodyOther
	case catalog.CategoryCombo:
		switch t {
		case catalog.TypeAcne:
			return KindComboAcne
		case catalog.TypeFace:
			return KindComboFace
		case catalog.TypeHair:
			return KindComboHair
		default:
			return KindComboOther
		}
	default:
		return KindGeneric
	}
}
