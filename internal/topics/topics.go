// Package topics holds the JEE Main syllabus catalog: the topic list
// offered for each subject when setting up a paper. The catalog is
// advisory — the generator accepts any non-empty topic names — but the
// setup screen only offers these.
package topics

import "github.com/Atchuta30/JEE-Prep-AI/internal/papergen"

// ForSubject returns the syllabus topics for a subject in display
// order, or nil for an unknown subject.
func ForSubject(s papergen.Subject) []string {
	return catalog[s]
}

// catalog maps subjects to their class 11 + 12 syllabus chapters.
var catalog = map[papergen.Subject][]string{
	papergen.SubjectMathematics: {
		// Class 11
		"Sets",
		"Relations and Functions (Algebra)",
		"Trigonometric Functions",
		"Principle of Mathematical Induction",
		"Complex Numbers",
		"Quadratic Equations",
		"Linear Inequalities",
		"Permutations and Combinations",
		"Binomial Theorem",
		"Sequences and Series",
		"Straight Lines",
		"Conic Sections",
		"Introduction to Three Dimensional Geometry",
		"Limits and Derivatives (Calculus)",
		"Mathematical Reasoning",
		"Statistics",
		"Probability (Basic)",
		// Class 12
		"Relations and Functions (Calculus & Advanced)",
		"Inverse Trigonometric Functions",
		"Matrices",
		"Determinants",
		"Continuity and Differentiability",
		"Application of Derivatives",
		"Integrals",
		"Application of Integrals",
		"Differential Equations",
		"Vector Algebra",
		"Three Dimensional Geometry (Advanced)",
		"Linear Programming",
		"Probability (Advanced)",
	},
	papergen.SubjectPhysics: {
		// Class 11
		"Units and Measurements",
		"Motion in a Straight Line",
		"Motion in a Plane",
		"Laws of Motion",
		"Work, Energy and Power",
		"System of Particles and Rotational Motion",
		"Gravitation",
		"Mechanical Properties of Solids",
		"Mechanical Properties of Fluids",
		"Thermal Properties of Matter",
		"Thermodynamics",
		"Kinetic Theory",
		"Oscillations",
		"Waves",
		// Class 12
		"Electric Charges and Fields",
		"Electrostatic Potential and Capacitance",
		"Current Electricity",
		"Moving Charges and Magnetism",
		"Magnetism and Matter",
		"Electromagnetic Induction",
		"Alternating Current",
		"Electromagnetic Waves",
		"Ray Optics and Optical Instruments",
		"Wave Optics",
		"Dual Nature of Radiation and Matter",
		"Atoms",
		"Nuclei",
		"Semiconductor Electronics",
		"Communication Systems",
	},
	papergen.SubjectChemistry: {
		// Class 11
		"Some Basic Concepts of Chemistry",
		"Structure of Atom",
		"States of Matter: Gases and Liquids",
		"Thermodynamics (Chemical)",
		"Equilibrium",
		"Classification of Elements and Periodicity",
		"Chemical Bonding and Molecular Structure",
		"Redox Reactions",
		"Hydrogen",
		"s-Block Elements",
		"Some p-Block Elements (Group 13-14)",
		"Organic Chemistry: Basic Principles & Techniques",
		"Hydrocarbons",
		// Class 12
		"Solutions",
		"Electrochemistry",
		"Chemical Kinetics",
		"Surface Chemistry",
		"General Principles of Isolation of Elements",
		"p-Block Elements (Group 15-18)",
		"d and f Block Elements",
		"Coordination Compounds",
		"Haloalkanes and Haloarenes",
		"Alcohols, Phenols and Ethers",
		"Aldehydes, Ketones and Carboxylic Acids",
		"Organic Compounds Containing Nitrogen (Amines)",
		"Biomolecules",
		"Polymers",
		"Chemistry in Everyday Life",
		"Environmental Chemistry",
	},
}
