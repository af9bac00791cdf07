package types

type Artist struct {
	Name           string   `json:"name"`
	Disambiguation string   `json:"disambiguation,omitempty"`
	Type           string   `json:"type,omitempty"`
	Country        string   `json:"country,omitempty"`
	Begin          string   `json:"begin,omitempty"`
	End            string   `json:"end,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Score          int      `json:"score"`
}

type Recipe struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Tags         []string `json:"tags,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	VideoURL     string   `json:"video_url,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
}

type RecipeSearch struct {
	Query   string   `json:"query"`
	Diet    string   `json:"diet,omitempty"`
	Total   int      `json:"total_found"`
	Recipes []Recipe `json:"recipes"`
}

type Book struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Published string   `json:"first_publish_year"`
	ISBN      string   `json:"isbn,omitempty"`
	Subjects  []string `json:"subjects,omitempty"`
}

type BookSearch struct {
	Query string `json:"query"`
	Total int    `json:"total_found"`
	Books []Book `json:"books"`
}

type TVShow struct {
	Name      string   `json:"name"`
	Premiered string   `json:"premiered,omitempty"`
	Status    string   `json:"status,omitempty"`
	Network   string   `json:"network,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	URL       string   `json:"url,omitempty"`
}
