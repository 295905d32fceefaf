package syllabus

// Subjects in display order.
var Subjects = []string{"mathematics", "physics", "chemistry", "biology"}

const (
	MinClass = 6
	MaxClass = 12
)

// topics maps subject -> class -> ordered topic names. Five topics per
// subject per class, covering classes 6 through 12.
var topics = map[string]map[int][]string{
	"mathematics": {
		6:  {"Number Systems", "Whole Numbers", "Playing with Numbers", "Basic Geometry", "Fractions"},
		7:  {"Integers", "Fractions & Decimals", "Data Handling", "Simple Equations", "Lines & Angles"},
		8:  {"Rational Numbers", "Linear Equations", "Quadrilaterals", "Data Handling", "Squares & Square Roots"},
		9:  {"Number Systems", "Polynomials", "Coordinate Geometry", "Linear Equations", "Triangles"},
		10: {"Real Numbers", "Polynomials", "Linear Equations", "Quadratic Equations", "Arithmetic Progressions"},
		11: {"Sets", "Relations & Functions", "Trigonometry", "Complex Numbers", "Linear Inequalities"},
		12: {"Relations & Functions", "Inverse Trigonometry", "Matrices", "Determinants", "Continuity"},
	},
	"physics": {
		6:  {"Motion & Measurement", "Light & Shadows", "Electricity", "Fun with Magnets", "Water & Air"},
		7:  {"Heat", "Acids & Bases", "Physical & Chemical Changes", "Weather & Climate", "Winds & Storms"},
		8:  {"Force & Pressure", "Friction", "Sound", "Chemical Effects of Current", "Natural Phenomena"},
		9:  {"Motion", "Force & Laws of Motion", "Gravitation", "Work & Energy", "Sound"},
		10: {"Light", "Human Eye", "Electricity", "Magnetic Effects", "Sources of Energy"},
		11: {"Physical World", "Units & Measurements", "Motion in Straight Line", "Motion in Plane", "Laws of Motion"},
		12: {"Electric Charges", "Electric Potential", "Current Electricity", "Magnetic Field", "Electromagnetic Induction"},
	},
	"chemistry": {
		6:  {"Food & Its Components", "Materials & Their Properties", "Water", "Air Around Us", "Garbage Management"},
		7:  {"Acids & Bases", "Physical & Chemical Changes", "Fiber to Fabric", "Heat", "Respiration in Organisms"},
		8:  {"Synthetic Fibers", "Materials & Metals", "Coal & Petroleum", "Combustion & Flame", "Force & Pressure"},
		9:  {"Matter Around Us", "Pure Substances", "Atoms & Molecules", "Structure of Atom", "Fundamental Unit of Life"},
		10: {"Chemical Reactions", "Acids & Bases", "Metals & Non-metals", "Carbon Compounds", "Life Processes"},
		11: {"Basic Concepts", "Structure of Atom", "Chemical Bonding", "States of Matter", "Thermodynamics"},
		12: {"Solid State", "Solutions", "Electrochemistry", "Chemical Kinetics", "Surface Chemistry"},
	},
	"biology": {
		6:  {"Food & Health", "Body Movements", "Living & Non-living", "Plants & Animals", "Environment"},
		7:  {"Nutrition in Plants", "Animal Nutrition", "Fiber to Fabric", "Heat", "Respiration in Organisms"},
		8:  {"Crop Production", "Microorganisms", "Cell Structure", "Reproduction in Animals", "Light"},
		9:  {"Fundamental Unit of Life", "Tissues", "Diversity in Living", "Disease & Health", "Natural Resources"},
		10: {"Life Processes", "Control & Coordination", "Reproduction", "Heredity & Evolution", "Natural Resource Management"},
		11: {"Living World", "Biological Classification", "Plant Kingdom", "Animal Kingdom", "Morphology of Plants"},
		12: {"Reproduction in Organisms", "Sexual Reproduction", "Human Reproduction", "Reproductive Health", "Heredity"},
	},
}

// Topics returns the ordered topic names for a subject and class, or
// nil when the subject is unknown or the class has no entries.
func Topics(subject string, class int) []string {
	byClass, ok := topics[subject]
	if !ok {
		return nil
	}
	return byClass[class]
}

// HasSubject reports whether subject is part of the syllabus.
func HasSubject(subject string) bool {
	_, ok := topics[subject]
	return ok
}

// HasTopic reports whether topic is listed for the subject and class.
func HasTopic(subject string, class int, topic string) bool {
	for _, t := range Topics(subject, class) {
		if t == topic {
			return true
		}
	}
	return false
}

// ValidClass reports whether class is within the supported range.
func ValidClass(class int) bool {
	return class >= MinClass && class <= MaxClass
}
