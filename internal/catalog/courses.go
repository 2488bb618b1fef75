// internal/catalog/courses.go
package catalog

import m "skillpath-workers/internal/models"

// Course branch keys, one per education stage.
const (
	BranchAfter10th         = "after-10th"
	BranchAfter12thScience  = "after-12th-science"
	BranchAfter12thCommerce = "after-12th-commerce"
	BranchAfter12thArts     = "after-12th-arts"
	BranchDiploma           = "diploma"
	BranchUndergraduate     = "undergraduate"
	BranchPostgraduate      = "postgraduate"
)

// CourseRule appends Courses when the profile holds any of AnyInterests or
// any of AnySkills. A rule with neither list always applies.
type CourseRule struct {
	AnyInterests []string   `json:"any_interests,omitempty"`
	AnySkills    []string   `json:"any_skills,omitempty"`
	Courses      []m.Course `json:"courses"`
}

// Unconditional reports whether the rule has no triggers.
func (r CourseRule) Unconditional() bool {
	return len(r.AnyInterests) == 0 && len(r.AnySkills) == 0
}

func builtinCourses() map[string][]CourseRule {
	return map[string][]CourseRule{
		BranchAfter10th: {
			{
				AnyInterests: []string{m.InterestTechnology, m.InterestScience, m.InterestEngineering},
				Courses: []m.Course{
					m.NewCourse("Science Stream (PCM - Physics, Chemistry, Maths)", "2 years", m.INR(50000, 200000),
						"Opens doors to Engineering, Architecture, Computer Science",
						"State Board Schools", "CBSE Schools", "ICSE Schools"),
					m.NewCourse("Polytechnic Diploma (Engineering)", "3 years", m.INR(30000, 150000),
						"Direct entry to engineering jobs or lateral entry to BE",
						"Government Polytechnics", "Private Polytechnics"),
				},
			},
			{
				AnyInterests: []string{m.InterestHealthcare, m.InterestScience},
				Courses: []m.Course{
					m.NewCourse("Science Stream (PCB - Physics, Chemistry, Biology)", "2 years", m.INR(50000, 200000),
						"Path to MBBS, BDS, Nursing, Pharmacy",
						"CBSE Schools", "State Boards", "ICSE Schools"),
				},
			},
			{
				AnyInterests: []string{m.InterestBusiness},
				Courses: []m.Course{
					m.NewCourse("Commerce Stream", "2 years", m.INR(40000, 150000),
						"Foundation for CA, CS, B.Com, BBA",
						"Commerce Colleges", "Private Schools"),
				},
			},
			{
				AnyInterests: []string{m.InterestArtDesign, m.InterestMedia},
				Courses: []m.Course{
					m.NewCourse("Arts/Humanities Stream", "2 years", m.INR(30000, 100000),
						"Psychology, Design, Mass Communication, Literature",
						"Arts Colleges", "Schools with Arts"),
				},
			},
		},
		BranchAfter12thScience: {
			{
				AnyInterests: []string{m.InterestTechnology, m.InterestEngineering},
				Courses: []m.Course{
					m.NewCourse("B.Tech/BE in Computer Science", "4 years", m.INR(400000, 2000000),
						"Software Development, AI/ML, Data Science careers",
						"IITs", "NITs", "BITS Pilani", "VIT", "SRM"),
					m.NewCourse("B.Tech in Electronics & Communication", "4 years", m.INR(400000, 1800000),
						"Telecom, IoT, Embedded Systems",
						"NITs", "IITs", "Anna University"),
				},
			},
			{
				AnyInterests: []string{m.InterestHealthcare},
				Courses: []m.Course{
					m.NewCourse("MBBS (Bachelor of Medicine, Bachelor of Surgery)", "5.5 years", m.INR(500000, 10000000),
						"Become a doctor, high prestige career",
						"AIIMS", "JIPMER", "Government Medical Colleges"),
					m.NewCourse("B.Pharmacy", "4 years", m.INR(200000, 1000000),
						"Pharmaceutical industry, drug research",
						"BITS Pilani", "ICT Mumbai", "JSS Mysore"),
				},
			},
			{
				Courses: []m.Course{
					m.NewCourse("BSc in Data Science", "3 years", m.INR(200000, 800000),
						"Analytics, AI/ML, Data Engineering",
						"Christ University", "Symbiosis", "Fergusson"),
				},
			},
		},
		BranchAfter12thCommerce: {
			{
				Courses: []m.Course{
					m.NewCourse("Chartered Accountancy (CA)", "4-5 years", m.INR(150000, 300000),
						"Most prestigious accounting qualification",
						"ICAI Centers nationwide"),
					m.NewCourse("B.Com (Honors)", "3 years", m.INR(100000, 500000),
						"Foundation for finance careers",
						"Delhi University", "Mumbai University", "Bangalore University"),
					m.NewCourse("BBA (Bachelor of Business Administration)", "3 years", m.INR(300000, 1500000),
						"Management, Marketing, HR careers",
						"Christ University", "NMIMS", "Symbiosis"),
					m.NewCourse("Company Secretary (CS)", "3-4 years", m.INR(100000, 200000),
						"Corporate legal compliance specialist",
						"ICSI Centers"),
					m.NewCourse("CMA (Cost & Management Accountant)", "3-4 years", m.INR(120000, 250000),
						"Cost accounting and management",
						"ICMAI Centers"),
				},
			},
		},
		BranchAfter12thArts: {
			{
				AnyInterests: []string{m.InterestArtDesign},
				Courses: []m.Course{
					m.NewCourse("Bachelor of Design (B.Des)", "4 years", m.INR(400000, 1600000),
						"Product, Fashion, Graphic Design",
						"NID", "NIFT", "Pearl Academy"),
				},
			},
			{
				AnyInterests: []string{m.InterestMedia},
				Courses: []m.Course{
					m.NewCourse("Bachelor of Mass Communication", "3 years", m.INR(200000, 800000),
						"Journalism, PR, Content Creation",
						"Xavier's Mumbai", "Jamia", "Symbiosis"),
				},
			},
			{
				AnyInterests: []string{m.InterestLaw},
				Courses: []m.Course{
					m.NewCourse("BA LLB (Integrated Law)", "5 years", m.INR(500000, 2000000),
						"Become a lawyer or legal advisor",
						"NLSIU Bangalore", "NALSAR", "NLUs"),
				},
			},
			{
				Courses: []m.Course{
					m.NewCourse("BA in Psychology", "3 years", m.INR(150000, 600000),
						"Counseling, HR, Clinical Psychology",
						"Delhi University", "Christ University", "Fergusson"),
				},
			},
		},
		BranchDiploma: {
			{
				Courses: []m.Course{
					m.NewCourse("BE/B.Tech (Lateral Entry)", "3 years", m.INR(300000, 1200000),
						"Direct admission to 2nd year engineering",
						"VIT", "Manipal", "BITS Pilani", "State Universities"),
					m.NewCourse("Specialized Certification Programs", "6-12 months", m.INR(50000, 300000),
						"Industry-specific certifications (PLC, Automation, etc.)",
						"NIELIT", "NSDC", "Industry Training Centers"),
					m.NewCourse("Higher Diploma in Specialized Field", "1-2 years", m.INR(100000, 400000),
						"Advanced technical skills",
						"Polytechnics", "Technical Institutes"),
				},
			},
		},
		BranchUndergraduate: {
			{
				AnySkills: []string{m.SkillProgramming, m.SkillDataAnalysis, m.SkillAIML},
				Courses: []m.Course{
					m.NewCourse("AI & Machine Learning Specialization", "6-12 months", m.INR(30000, 200000),
						"Deep Learning, Neural Networks, Computer Vision",
						"Coursera", "edX", "Great Learning", "upGrad"),
					m.NewCourse("Full Stack Web Development", "4-8 months", m.INR(20000, 150000),
						"MERN/MEAN Stack, DevOps",
						"Masai School", "Coding Ninjas", "Scaler Academy"),
				},
			},
			{
				AnyInterests: []string{m.InterestTechnology},
				AnySkills:    []string{m.SkillCloud},
				Courses: []m.Course{
					m.NewCourse("Cloud Computing Certification (AWS/Azure/GCP)", "3-6 months", m.INR(15000, 100000),
						"Cloud Architecture, DevOps",
						"AWS Training", "Microsoft Learn", "Google Cloud Training"),
				},
			},
			{
				AnySkills: []string{m.SkillDigitalMarketing},
				Courses: []m.Course{
					m.NewCourse("Digital Marketing Professional", "3-6 months", m.INR(25000, 150000),
						"SEO, SEM, Social Media Marketing",
						"Google Digital Garage", "HubSpot", "UpGrad"),
				},
			},
		},
		BranchPostgraduate: {
			{
				Courses: []m.Course{
					m.NewCourse("MBA (Master of Business Administration)", "2 years", m.INR(1000000, 5000000),
						"Leadership, Strategy, Consulting",
						"IIMs", "ISB", "FMS Delhi", "XLRI"),
					m.NewCourse("M.Tech in Specialization", "2 years", m.INR(200000, 1000000),
						"Advanced technical specialization",
						"IITs", "NITs", "IISc"),
					m.NewCourse("MS in Data Science", "2 years", m.INR(300000, 1500000),
						"Advanced analytics, ML research",
						"IITs", "IIIT", "International Universities"),
				},
			},
		},
	}
}
