package model

// UserProfile is the demo visitor shown on the dashboard
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
}

// Contribution is a review or photo the visitor shared
type Contribution struct {
	Kind     string `json:"kind"` // review | photo
	Location string `json:"location"`
	When     string `json:"when"`
}

// Certification is a badge earned by the visitor
type Certification struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Rewards summarises the clean points programme
type Rewards struct {
	CleanPoints    int             `json:"clean_points"`
	NextLevel      int             `json:"next_level"`
	PointsToNext   int             `json:"points_to_next"`
	Progress       float64         `json:"progress"` // 0-100
	Certifications []Certification `json:"certifications"`
}

// Dashboard is the full user dashboard payload
type Dashboard struct {
	User          UserProfile    `json:"user"`
	Favorites     []Location     `json:"favorites"`
	History       []Location     `json:"history"`
	Contributions []Contribution `json:"contributions"`
	Rewards       Rewards        `json:"rewards"`
	Tabs          []string       `json:"tabs"`
}
