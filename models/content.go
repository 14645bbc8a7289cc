package models

// AboutValue is one {title, description} entry on the about page.
type AboutValue struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// AboutContent is the singleton about-page document (content/about).
// Saved wholesale; not versioned.
type AboutContent struct {
	HeroTitle       string       `json:"heroTitle" bson:"heroTitle"`
	HeroDescription string       `json:"heroDescription" bson:"heroDescription"`
	StoryTitle      string       `json:"storyTitle" bson:"storyTitle"`
	StoryContent    []string     `json:"storyContent" bson:"storyContent"`
	MissionTitle    string       `json:"missionTitle" bson:"missionTitle"`
	MissionContent  string       `json:"missionContent" bson:"missionContent"`
	Values          []AboutValue `json:"values" bson:"values"`
}

// CompanyRules is the singleton settings/companyRules document.
type CompanyRules struct {
	Rules []string `json:"rules" bson:"rules"`
}

// SocialMediaURLs is the singleton settings/socialMedia document.
// Absent fields fall back individually to the defaults.
type SocialMediaURLs struct {
	Instagram string `json:"instagram" bson:"instagram"`
	TikTok    string `json:"tiktok" bson:"tiktok"`
	YouTube   string `json:"youtube" bson:"youtube"`
}
