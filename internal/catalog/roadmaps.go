// internal/catalog/roadmaps.go
package catalog

import m "skillpath-workers/internal/models"

func month(phase, focus string, goals, resources []string) m.MonthTemplate {
	return m.MonthTemplate{Phase: phase, Focus: focus, Goals: goals, Resources: resources}
}

func builtinRoadmaps() []m.RoadmapTemplate {
	return []m.RoadmapTemplate{
		{
			Career: "Software Engineer",
			Months: []m.MonthTemplate{
				month("Foundation", "Programming Fundamentals",
					[]string{"Learn Python or Java basics", "Understand data structures (arrays, lists, dictionaries)", "Practice 20+ coding problems", "Build a simple calculator app"},
					[]string{"Coursera Python for Everybody", "LeetCode Easy Problems", "YouTube CS Dojo"}),
				month("Intermediate Skills", "Object-Oriented Programming & Algorithms",
					[]string{"Master OOP concepts", "Learn sorting and searching algorithms", "Solve 50+ medium-level problems", "Build a to-do list web app"},
					[]string{"Udemy Java Masterclass", "HackerRank", "FreeCodeCamp"}),
				month("Web Development", "Frontend & Backend Basics",
					[]string{"Learn HTML, CSS, JavaScript", "Understand React or Angular basics", "Build REST APIs with Node.js/Flask", "Create a personal portfolio website"},
					[]string{"The Odin Project", "MDN Web Docs", "Scrimba React Course"}),
				month("Databases & Backend", "Database Design & Server-Side Development",
					[]string{"Learn SQL and database design", "Understand NoSQL (MongoDB)", "Build full-stack CRUD application", "Deploy app on Heroku/Vercel"},
					[]string{"MongoDB University", "PostgreSQL Tutorial", "DigitalOcean Guides"}),
				month("Projects & DSA", "Real-World Projects & Problem Solving",
					[]string{"Build 2-3 portfolio projects", "Practice advanced DSA problems", "Contribute to open-source", "Create GitHub profile"},
					[]string{"GitHub", "LeetCode Hard", "HackerRank"}),
				month("Job Preparation", "Interview Prep & Networking",
					[]string{"Solve interview-style problems daily", "Build strong LinkedIn profile", "Apply to 20+ companies", "Practice mock interviews"},
					[]string{"Pramp", "InterviewBit", "LinkedIn Learning"}),
			},
		},
		{
			Career: "Data Scientist",
			Months: []m.MonthTemplate{
				month("Foundation", "Python & Statistics Basics",
					[]string{"Learn Python programming", "Understand descriptive statistics", "Learn pandas and numpy", "Analyze your first dataset"},
					[]string{"DataCamp Python", "Khan Academy Statistics", "Kaggle Learn"}),
				month("Data Analysis", "Data Manipulation & Visualization",
					[]string{"Master pandas for data cleaning", "Learn matplotlib and seaborn", "Complete 3 data analysis projects", "Create data dashboards"},
					[]string{"Kaggle Datasets", "Plotly Dash", "Tableau Public"}),
				month("Machine Learning", "ML Fundamentals",
					[]string{"Understand supervised learning", "Learn regression and classification", "Implement ML algorithms from scratch", "Build prediction models"},
					[]string{"Andrew Ng ML Course", "Scikit-learn Docs", "Kaggle Competitions"}),
				month("Advanced ML", "Deep Learning & Neural Networks",
					[]string{"Learn TensorFlow/PyTorch", "Understand neural networks", "Build image classification model", "Work with NLP basics"},
					[]string{"Fast.ai", "DeepLearning.AI", "PyTorch Tutorials"}),
				month("Projects & Portfolio", "Real-World DS Projects",
					[]string{"Complete 3 end-to-end projects", "Participate in Kaggle competitions", "Create data science blog", "Build project portfolio"},
					[]string{"Kaggle", "Medium", "GitHub Pages"}),
				month("Job Readiness", "Interview Prep & Networking",
					[]string{"Practice SQL and Python interviews", "Learn A/B testing concepts", "Build strong GitHub profile", "Network with data professionals"},
					[]string{"StrataScratch", "DataCamp Interview Prep", "LinkedIn"}),
			},
		},
		{
			Career: "Digital Marketing Manager",
			Months: []m.MonthTemplate{
				month("Marketing Fundamentals", "Digital Marketing Basics",
					[]string{"Understand marketing concepts", "Learn SEO fundamentals", "Study social media marketing", "Create first campaign plan"},
					[]string{"Google Digital Garage", "HubSpot Academy", "Moz SEO Guide"}),
				month("Content & SEO", "Content Marketing & Search Optimization",
					[]string{"Master keyword research", "Write SEO-optimized content", "Learn Google Analytics", "Build content calendar"},
					[]string{"Ahrefs Blog", "SEMrush Academy", "Google Analytics Academy"}),
				month("Paid Advertising", "Google Ads & Facebook Ads",
					[]string{"Get Google Ads certified", "Learn Facebook Ads Manager", "Create ad campaigns", "Understand PPC strategy"},
					[]string{"Google Skillshop", "Facebook Blueprint", "WordStream Blog"}),
				month("Social Media", "Social Media Strategy",
					[]string{"Master Instagram & LinkedIn marketing", "Learn influencer marketing", "Create viral content", "Grow social media following"},
					[]string{"Hootsuite Academy", "Buffer Blog", "Later"}),
				month("Analytics & Tools", "Marketing Analytics & Automation",
					[]string{"Master Google Analytics 4", "Learn marketing automation", "Use email marketing tools", "Create analytics reports"},
					[]string{"Mailchimp Academy", "Google Analytics", "HubSpot CRM"}),
				month("Portfolio & Jobs", "Build Portfolio & Get Hired",
					[]string{"Create marketing portfolio", "Run personal brand campaigns", "Network with marketers", "Apply to marketing roles"},
					[]string{"Behance", "LinkedIn", "AngelList"}),
			},
		},
		{
			Career: "UX/UI Designer",
			Months: []m.MonthTemplate{
				month("Design Fundamentals", "Design Principles & Tools",
					[]string{"Learn design principles", "Master Figma basics", "Understand color theory", "Create first design mockups"},
					[]string{"Figma YouTube", "Coursera Design Courses", "Dribbble"}),
				month("UX Research", "User Research & Psychology",
					[]string{"Learn user research methods", "Conduct user interviews", "Create user personas", "Build user journey maps"},
					[]string{"Nielsen Norman Group", "UX Collective", "Interaction Design Foundation"}),
				month("UI Design", "Interface Design & Prototyping",
					[]string{"Master advanced Figma", "Learn design systems", "Create high-fidelity prototypes", "Study mobile app design"},
					[]string{"Figma Community", "Adobe XD Tutorials", "Material Design"}),
				month("Interaction Design", "Animations & Micro-interactions",
					[]string{"Learn Principle or Framer", "Create animated prototypes", "Understand usability testing", "Build interactive designs"},
					[]string{"Framer Learn", "LottieFiles", "ProtoPie"}),
				month("Portfolio Projects", "Real-World Design Projects",
					[]string{"Complete 3-5 case studies", "Redesign existing apps/websites", "Participate in design challenges", "Build portfolio website"},
					[]string{"Behance", "Daily UI Challenge", "Webflow"}),
				month("Job Preparation", "Portfolio & Interviews",
					[]string{"Perfect portfolio presentation", "Practice design interviews", "Network with designers", "Apply to design roles"},
					[]string{"ADPList", "Behance", "LinkedIn", "Cofolios"}),
			},
		},
	}
}

// builtinDefaultRoadmap is used for careers without a dedicated template.
func builtinDefaultRoadmap() []m.MonthTemplate {
	return []m.MonthTemplate{
		month("Foundation", "Learn Fundamentals",
			[]string{"Research the field thoroughly", "Identify key skills needed", "Start with beginner courses", "Connect with professionals"},
			[]string{"Coursera", "edX", "LinkedIn Learning", "YouTube"}),
		month("Skill Building", "Develop Core Competencies",
			[]string{"Complete intermediate courses", "Practice hands-on projects", "Read industry publications", "Join relevant communities"},
			[]string{"Udemy", "Skillshare", "Industry Forums", "Reddit"}),
		month("Practical Experience", "Real-World Application",
			[]string{"Work on personal projects", "Seek internships or volunteering", "Build portfolio of work", "Get feedback from mentors"},
			[]string{"Internshala", "AngelList", "LinkedIn", "GitHub"}),
		month("Advanced Learning", "Specialization",
			[]string{"Take advanced courses", "Get certifications", "Attend workshops/webinars", "Stay updated with trends"},
			[]string{"Professional Certifications", "Webinars", "Industry Events"}),
		month("Portfolio Development", "Showcase Your Work",
			[]string{"Create professional portfolio", "Document all projects", "Get testimonials", "Build personal brand"},
			[]string{"Personal Website", "LinkedIn", "Medium", "GitHub"}),
		month("Job Hunting", "Career Launch",
			[]string{"Polish resume and portfolio", "Network actively", "Apply strategically", "Prepare for interviews"},
			[]string{"LinkedIn", "Naukri", "Glassdoor", "Mock Interviews"}),
	}
}
