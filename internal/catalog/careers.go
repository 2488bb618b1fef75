// internal/catalog/careers.go
package catalog

import m "skillpath-workers/internal/models"

func builtinCareers() []m.CareerRecord {
	return []m.CareerRecord{
		{
			Name:                  "Software Engineer",
			RelatedInterests:      []string{m.InterestTechnology, m.InterestScience},
			RequiredSkills:        []string{m.SkillProgramming, m.SkillProblemSolving, m.SkillAnalyticalThinking, m.SkillTeamwork},
			PersonalityFit:        []string{m.PersonalityAnalytical, m.PersonalityInvestigative},
			EducationRequirements: []string{"12th Grade - Science", "Undergraduate", "Diploma (Engineering)"},
			SalaryRange:           "₹4-25 LPA (Entry to Senior)",
			GrowthPotential:       "Excellent - High demand globally",
		},
		{
			Name:                  "Data Scientist",
			RelatedInterests:      []string{m.InterestTechnology, m.InterestScience},
			RequiredSkills:        []string{m.SkillDataAnalysis, m.SkillProgramming, m.SkillAnalyticalThinking, m.SkillProblemSolving},
			PersonalityFit:        []string{m.PersonalityAnalytical, m.PersonalityInvestigative},
			EducationRequirements: []string{"Undergraduate", "Postgraduate"},
			SalaryRange:           "₹6-30 LPA",
			GrowthPotential:       "Excellent - AI/ML boom",
		},
		{
			Name:                  "Doctor (MBBS)",
			RelatedInterests:      []string{m.InterestHealthcare, m.InterestScience, m.InterestSocialWork},
			RequiredSkills:        []string{m.SkillCriticalThinking, m.SkillEmpathy, m.SkillCommunication, m.SkillProblemSolving},
			PersonalityFit:        []string{m.PersonalitySocial, m.PersonalityInvestigative},
			EducationRequirements: []string{"12th Grade - Science"},
			SalaryRange:           "₹8-50 LPA",
			GrowthPotential:       "Very High - Always in demand",
		},
		{
			Name:                  "Chartered Accountant (CA)",
			RelatedInterests:      []string{m.InterestBusiness},
			RequiredSkills:        []string{m.SkillAnalyticalThinking, m.SkillTimeManagement, m.SkillCriticalThinking},
			PersonalityFit:        []string{m.PersonalityAnalytical},
			EducationRequirements: []string{"12th Grade - Commerce", "Undergraduate"},
			SalaryRange:           "₹7-40 LPA",
			GrowthPotential:       "Very High - Prestigious career",
		},
		{
			Name:                  "UX/UI Designer",
			RelatedInterests:      []string{m.InterestArtDesign, m.InterestTechnology},
			RequiredSkills:        []string{m.SkillGraphicDesign, m.SkillCreativity, m.SkillProblemSolving, m.SkillCommunication},
			PersonalityFit:        []string{m.PersonalityCreative, m.PersonalityAnalytical},
			EducationRequirements: []string{"12th Grade", "Undergraduate", "Diploma"},
			SalaryRange:           "₹3-20 LPA",
			GrowthPotential:       "High - Growing digital economy",
		},
		{
			Name:                  "Digital Marketing Manager",
			RelatedInterests:      []string{m.InterestBusiness, m.InterestMedia, m.InterestTechnology},
			RequiredSkills:        []string{m.SkillDigitalMarketing, m.SkillCommunication, m.SkillCreativity, m.SkillAnalyticalThinking},
			PersonalityFit:        []string{m.PersonalityCreative, m.PersonalitySocial},
			EducationRequirements: []string{"12th Grade", "Undergraduate"},
			SalaryRange:           "₹4-18 LPA",
			GrowthPotential:       "Very High - Digital transformation",
		},
		{
			Name:                  "Mechanical Engineer",
			RelatedInterests:      []string{m.InterestEngineering, m.InterestTechnology},
			RequiredSkills:        []string{m.SkillCAD, m.SkillProblemSolving, m.SkillAnalyticalThinking},
			PersonalityFit:        []string{m.PersonalityPractical, m.PersonalityAnalytical},
			EducationRequirements: []string{"12th Grade - Science", "Diploma (Engineering)", "Undergraduate"},
			SalaryRange:           "₹3-15 LPA",
			GrowthPotential:       "Good - Manufacturing sector",
		},
		{
			Name:                  "Content Creator/YouTuber",
			RelatedInterests:      []string{m.InterestMedia, m.InterestArtDesign},
			RequiredSkills:        []string{m.SkillVideoEditing, m.SkillCreativity, m.SkillCommunication, m.SkillDigitalMarketing},
			PersonalityFit:        []string{m.PersonalityCreative, m.PersonalitySocial},
			EducationRequirements: []string{"10th Grade", "12th Grade"},
			SalaryRange:           "₹2-50 LPA (highly variable)",
			GrowthPotential:       "High - Creator economy boom",
		},
		{
			Name:                  "Psychologist",
			RelatedInterests:      []string{m.InterestHealthcare, m.InterestSocialWork, m.InterestScience},
			RequiredSkills:        []string{m.SkillEmpathy, m.SkillCommunication, m.SkillAnalyticalThinking, m.SkillProblemSolving},
			PersonalityFit:        []string{m.PersonalitySocial, m.PersonalityInvestigative},
			EducationRequirements: []string{"12th Grade", "Undergraduate", "Postgraduate"},
			SalaryRange:           "₹3-12 LPA",
			GrowthPotential:       "Good - Mental health awareness rising",
		},
		{
			Name:                  "Business Analyst",
			RelatedInterests:      []string{m.InterestBusiness, m.InterestTechnology},
			RequiredSkills:        []string{m.SkillDataAnalysis, m.SkillAnalyticalThinking, m.SkillCommunication, m.SkillProblemSolving},
			PersonalityFit:        []string{m.PersonalityAnalytical, m.PersonalitySocial},
			EducationRequirements: []string{"Undergraduate", "Postgraduate"},
			SalaryRange:           "₹5-20 LPA",
			GrowthPotential:       "Very High - Critical role",
		},
		{
			Name:                  "Civil Engineer",
			RelatedInterests:      []string{m.InterestEngineering, m.InterestEnvironment},
			RequiredSkills:        []string{m.SkillCAD, m.SkillProblemSolving, m.SkillAnalyticalThinking},
			PersonalityFit:        []string{m.PersonalityPractical, m.PersonalityAnalytical},
			EducationRequirements: []string{"12th Grade - Science", "Diploma (Engineering)", "Undergraduate"},
			SalaryRange:           "₹3-12 LPA",
			GrowthPotential:       "Good - Infrastructure development",
		},
		{
			Name:                  "Investment Banker",
			RelatedInterests:      []string{m.InterestBusiness},
			RequiredSkills:        []string{m.SkillAnalyticalThinking, m.SkillCommunication, m.SkillCriticalThinking, m.SkillProblemSolving},
			PersonalityFit:        []string{m.PersonalityAnalytical, m.PersonalitySocial},
			EducationRequirements: []string{"Undergraduate", "Postgraduate"},
			SalaryRange:           "₹8-50 LPA",
			GrowthPotential:       "Excellent - High rewards",
		},
		{
			Name:                  "Teacher/Professor",
			RelatedInterests:      []string{m.InterestTeaching, m.InterestSocialWork},
			RequiredSkills:        []string{m.SkillCommunication, m.SkillEmpathy, m.SkillCreativity, m.SkillLeadership},
			PersonalityFit:        []string{m.PersonalitySocial, m.PersonalityInvestigative},
			EducationRequirements: []string{"Undergraduate", "Postgraduate"},
			SalaryRange:           "₹3-15 LPA",
			GrowthPotential:       "Stable - Respectable profession",
		},
		{
			Name:                  "Product Manager",
			RelatedInterests:      []string{m.InterestTechnology, m.InterestBusiness},
			RequiredSkills:        []string{m.SkillLeadership, m.SkillCommunication, m.SkillAnalyticalThinking, m.SkillProblemSolving},
			PersonalityFit:        []string{m.PersonalityAnalytical, m.PersonalitySocial},
			EducationRequirements: []string{"Undergraduate", "Postgraduate"},
			SalaryRange:           "₹10-40 LPA",
			GrowthPotential:       "Excellent - Strategic role",
		},
		{
			Name:                  "Architect",
			RelatedInterests:      []string{m.InterestArtDesign, m.InterestEngineering},
			RequiredSkills:        []string{m.SkillCAD, m.SkillCreativity, m.SkillProblemSolving, m.SkillAnalyticalThinking},
			PersonalityFit:        []string{m.PersonalityCreative, m.PersonalityPractical},
			EducationRequirements: []string{"12th Grade", "Undergraduate"},
			SalaryRange:           "₹3-20 LPA",
			GrowthPotential:       "Good - Real estate growth",
		},
	}
}
