// internal/models/vocabulary.go
package models

// Controlled vocabularies offered by the questionnaire. Career and course
// records are written against the same strings.

var EducationLevels = []string{
	"10th Grade",
	"12th Grade - Science",
	"12th Grade - Commerce",
	"12th Grade - Arts",
	"Diploma (Engineering)",
	"Diploma (Other)",
	"Undergraduate (1st/2nd Year)",
	"Undergraduate (3rd/4th Year)",
	"Postgraduate",
}

const (
	InterestTechnology  = "Technology & Programming"
	InterestHealthcare  = "Healthcare & Medicine"
	InterestBusiness    = "Business & Finance"
	InterestArtDesign   = "Art & Design"
	InterestScience     = "Science & Research"
	InterestTeaching    = "Teaching & Education"
	InterestEngineering = "Engineering & Manufacturing"
	InterestMedia       = "Media & Entertainment"
	InterestLaw         = "Law & Politics"
	InterestSports      = "Sports & Fitness"
	InterestSocialWork  = "Social Work"
	InterestEnvironment = "Environment & Sustainability"
)

var Interests = []string{
	InterestTechnology,
	InterestHealthcare,
	InterestBusiness,
	InterestArtDesign,
	InterestScience,
	InterestTeaching,
	InterestEngineering,
	InterestMedia,
	InterestLaw,
	InterestSports,
	InterestSocialWork,
	InterestEnvironment,
}

const (
	SkillProgramming      = "Programming (Python, Java, etc.)"
	SkillDataAnalysis     = "Data Analysis"
	SkillWebDevelopment   = "Web Development"
	SkillMobileApps       = "Mobile App Development"
	SkillDigitalMarketing = "Digital Marketing"
	SkillVideoEditing     = "Video Editing"
	SkillGraphicDesign    = "Graphic Design"
	SkillCAD              = "CAD/3D Modeling"
	SkillNetworking       = "Networking"
	SkillDatabases        = "Database Management"
	SkillAIML             = "AI/ML Basics"
	SkillCloud            = "Cloud Computing"
)

var TechnicalSkills = []string{
	SkillProgramming,
	SkillDataAnalysis,
	SkillWebDevelopment,
	SkillMobileApps,
	SkillDigitalMarketing,
	SkillVideoEditing,
	SkillGraphicDesign,
	SkillCAD,
	SkillNetworking,
	SkillDatabases,
	SkillAIML,
	SkillCloud,
}

const (
	SkillLeadership         = "Leadership"
	SkillCommunication      = "Communication"
	SkillProblemSolving     = "Problem Solving"
	SkillTeamwork           = "Teamwork"
	SkillCriticalThinking   = "Critical Thinking"
	SkillCreativity         = "Creativity"
	SkillTimeManagement     = "Time Management"
	SkillAdaptability       = "Adaptability"
	SkillEmpathy            = "Empathy"
	SkillAnalyticalThinking = "Analytical Thinking"
)

var SoftSkills = []string{
	SkillLeadership,
	SkillCommunication,
	SkillProblemSolving,
	SkillTeamwork,
	SkillCriticalThinking,
	SkillCreativity,
	SkillTimeManagement,
	SkillAdaptability,
	SkillEmpathy,
	SkillAnalyticalThinking,
}

// Personality types as matched by career records. The questionnaire offers
// them with a parenthetical description, see Personalities.
const (
	PersonalityAnalytical    = "Analytical & Logical"
	PersonalityCreative      = "Creative & Artistic"
	PersonalitySocial        = "Social & Empathetic"
	PersonalityPractical     = "Practical & Hands-on"
	PersonalityInvestigative = "Investigative & Curious"
)

var Personalities = []string{
	PersonalityAnalytical + " (I love solving problems with data and logic)",
	PersonalityCreative + " (I express myself through creativity)",
	PersonalitySocial + " (I enjoy helping and connecting with people)",
	PersonalityPractical + " (I learn best by doing things)",
	PersonalityInvestigative + " (I love researching and discovering)",
}

var LearningStyles = []string{
	"Visual (Videos, diagrams, infographics)",
	"Reading/Writing (Books, articles, notes)",
	"Hands-on (Projects, experiments, practice)",
	"Auditory (Lectures, podcasts, discussions)",
}

var WorkEnvironments = []string{
	"Office/Corporate",
	"Remote/Freelance",
	"Field Work",
	"Laboratory/Research",
	"Creative Studio",
	"Healthcare Facility",
}

var CareerPriorities = []string{
	"High Salary & Financial Growth",
	"Work-Life Balance",
	"Creative Freedom",
	"Job Security & Stability",
	"Making Social Impact",
	"Continuous Learning",
}

var Timeframes = []string{
	"Immediate (0-6 months)",
	"Short-term (6-12 months)",
	"Medium-term (1-2 years)",
	"Long-term (2-4 years)",
	"After further studies (4+ years)",
}

var LocationPreferences = []string{
	"Same City",
	"Within State",
	"Anywhere in India",
	"Abroad",
}

var Industries = []string{
	"IT & Software",
	"Healthcare",
	"Finance & Banking",
	"E-commerce",
	"Manufacturing",
	"Education",
	"Consulting",
	"Media & Entertainment",
	"Government",
	"Startups",
	"Automotive",
	"Aerospace",
}

// Numeric answer domains.
const (
	MinAcademicPerformance     = 40
	MaxAcademicPerformance     = 100
	DefaultAcademicPerformance = 75

	MinBudget     = 0
	MaxBudget     = 50000
	DefaultBudget = 5000

	MinTimeAvailable     = 5
	MaxTimeAvailable     = 40
	DefaultTimeAvailable = 15
)

// Contains reports whether value is one of the vocabulary entries.
func Contains(vocabulary []string, value string) bool {
	for _, v := range vocabulary {
		if v == value {
			return true
		}
	}
	return false
}
