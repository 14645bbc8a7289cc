package content

import "legacy/models"

// Fallback copy shown whenever the remote documents are absent or the store
// is unreachable. Never written back automatically.

func DefaultAbout() models.AboutContent {
	return models.AboutContent{
		HeroTitle:       "ABOUT LEGACY",
		HeroDescription: "WE ARE A PREMIUM FASHION BRAND DEDICATED TO CREATING EXCEPTIONAL SHOPPING EXPERIENCES THAT COMBINE STYLE, QUALITY, AND INNOVATION.",
		StoryTitle:      "OUR STORY",
		StoryContent: []string{
			"Founded in 2010, LEGACY emerged from a passion for creating premium fashion experiences that resonate with modern consumers who value both style and substance.",
			"We started as a small team of fashion enthusiasts and designers, united by a shared vision of transforming how people discover and experience high-quality clothing and accessories.",
			"Today, we're proud to be a leading premium fashion brand, serving customers worldwide with our carefully curated product offerings and exceptional customer service.",
		},
		MissionTitle:   "OUR MISSION",
		MissionContent: "TO CREATE PREMIUM FASHION EXPERIENCES THAT INSPIRE CONFIDENCE AND SELF-EXPRESSION, WHILE MAINTAINING THE HIGHEST STANDARDS OF QUALITY, CRAFTSMANSHIP, AND CUSTOMER SERVICE.",
		Values: []models.AboutValue{
			{Title: "INNOVATION", Description: "We push the boundaries of fashion technology with AI-powered experiences and cutting-edge design."},
			{Title: "COMMUNITY", Description: "Building a global community of fashion enthusiasts who share our passion for style and innovation."},
			{Title: "QUALITY", Description: "Every product is crafted with the highest standards of quality, durability, and attention to detail."},
			{Title: "SUSTAINABILITY", Description: "Committed to sustainable fashion practices and reducing our environmental impact."},
		},
	}
}

func DefaultRules() models.CompanyRules {
	return models.CompanyRules{Rules: []string{
		"All products must meet our premium quality standards before listing",
		"Customer data privacy and security is our top priority",
		"We maintain sustainable and ethical sourcing practices",
		"Innovation and customer experience drive all our decisions",
		"We provide honest and transparent product descriptions",
	}}
}

func DefaultSocial() models.SocialMediaURLs {
	return models.SocialMediaURLs{
		Instagram: "https://instagram.com/legacy",
		TikTok:    "https://tiktok.com/@legacy",
		YouTube:   "https://youtube.com/@legacy",
	}
}
