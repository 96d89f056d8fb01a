package solver

import "github.com/anthropics/tutor-engine/internal/domain"

// verifiedResources maps each subject to its curated reference links.
// Every solution record for a subject carries this static list; nothing
// is fetched or computed at runtime.
func verifiedResources() map[domain.Subject][]domain.Resource {
	return map[domain.Subject][]domain.Resource{
		domain.SubjectMathematics: {
			{Name: "Khan Academy - Mathematics", URL: "https://www.khanacademy.org/math", Description: "Comprehensive math courses from basic to advanced"},
			{Name: "Wolfram MathWorld", URL: "https://mathworld.wolfram.com/", Description: "Extensive mathematics encyclopedia"},
			{Name: "Paul's Online Math Notes", URL: "https://tutorial.math.lamar.edu/", Description: "Free math tutorials and practice problems"},
			{Name: "Math is Fun", URL: "https://www.mathsisfun.com/", Description: "Easy-to-understand math explanations"},
		},
		domain.SubjectPhysics: {
			{Name: "Khan Academy - Physics", URL: "https://www.khanacademy.org/science/physics", Description: "Physics lessons from fundamentals to advanced"},
			{Name: "Physics Classroom", URL: "https://www.physicsclassroom.com/", Description: "Interactive physics tutorials"},
			{Name: "HyperPhysics", URL: "http://hyperphysics.phy-astr.gsu.edu/", Description: "Exploration of physics concepts"},
			{Name: "NASA Science", URL: "https://science.nasa.gov/", Description: "Space and physics research"},
		},
		domain.SubjectChemistry: {
			{Name: "Khan Academy - Chemistry", URL: "https://www.khanacademy.org/science/chemistry", Description: "Comprehensive chemistry courses"},
			{Name: "Royal Society of Chemistry", URL: "https://www.rsc.org/", Description: "Chemistry education and resources"},
			{Name: "ChemGuide", URL: "https://www.chemguide.co.uk/", Description: "Detailed chemistry tutorials"},
			{Name: "PubChem", URL: "https://pubchem.ncbi.nlm.nih.gov/", Description: "Chemical compound database"},
		},
		domain.SubjectBiology: {
			{Name: "Khan Academy - Biology", URL: "https://www.khanacademy.org/science/biology", Description: "Biology from cells to ecosystems"},
			{Name: "Nature Education - Scitable", URL: "https://www.nature.com/scitable/", Description: "Biology learning resources"},
			{Name: "National Geographic - Biology", URL: "https://www.nationalgeographic.com/science/biology", Description: "Biology articles and resources"},
			{Name: "NCBI", URL: "https://www.ncbi.nlm.nih.gov/", Description: "Biotechnology and biology research"},
		},
		domain.SubjectSocialScience: {
			{Name: "Khan Academy - History", URL: "https://www.khanacademy.org/humanities/history", Description: "World history courses"},
			{Name: "CrashCourse - Social Science", URL: "https://www.youtube.com/user/crashcourse", Description: "Video courses on various social sciences"},
			{Name: "UNESCO", URL: "https://en.unesco.org/", Description: "Education, science, and culture resources"},
			{Name: "Britannica - Social Science", URL: "https://www.britannica.com/topic/social-science", Description: "Encyclopedia entries on social topics"},
		},
		domain.SubjectEconomics: {
			{Name: "Khan Academy - Economics", URL: "https://www.khanacademy.org/economics-finance-domain", Description: "Micro and macroeconomics courses"},
			{Name: "Investopedia - Economics", URL: "https://www.investopedia.com/economics/", Description: "Economic concepts and terms"},
			{Name: "IMF - Economic Concepts", URL: "https://www.imf.org/en/Publications/FandD", Description: "International Monetary Fund resources"},
			{Name: "World Bank - Economics", URL: "https://www.worldbank.org/en/research", Description: "Economic research and data"},
		},
		domain.SubjectHealth: {
			{Name: "WHO - World Health Organization", URL: "https://www.who.int/", Description: "Official health information"},
			{Name: "Mayo Clinic", URL: "https://www.mayoclinic.org/", Description: "Medical information and health guides"},
			{Name: "MedlinePlus", URL: "https://medlineplus.gov/", Description: "Health information from NIH"},
			{Name: "CDC - Centers for Disease Control", URL: "https://www.cdc.gov/", Description: "Disease prevention and health information"},
		},
		domain.SubjectComputerScience: {
			{Name: "W3Schools", URL: "https://www.w3schools.com/", Description: "Web development tutorials"},
			{Name: "MDN Web Docs", URL: "https://developer.mozilla.org/", Description: "Web technology documentation"},
			{Name: "GeeksforGeeks", URL: "https://www.geeksforgeeks.org/", Description: "Computer science tutorials"},
			{Name: "LeetCode", URL: "https://leetcode.com/", Description: "Programming practice problems"},
			{Name: "GitHub Skills", URL: "https://github.com/skills", Description: "Coding and version control learning"},
		},
	}
}
