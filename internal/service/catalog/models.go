package catalog

// Action кнопка на странице с целевым маршрутом или внешней ссылкой
type Action struct {
	Label    string `json:"label"`
	Path     string `json:"path,omitempty"`
	External string `json:"external,omitempty"`
}

// LandingResponse данные стартовой страницы
type LandingResponse struct {
	AppName    string   `json:"appName"`
	Tagline    string   `json:"tagline"`
	Highlights []string `json:"highlights"`
	Actions    []Action `json:"actions"`
}

type PlanResponse struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

type ServiceResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// PlansResponse каталог планов подписки и разовых услуг
type PlansResponse struct {
	Plans    []PlanResponse    `json:"plans"`
	Services []ServiceResponse `json:"services"`
}

type TechnicianResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	AvatarURL   string   `json:"avatar"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Specialties []string `json:"specialties"`
	Verified    bool     `json:"verified"`
	Experience  string   `json:"experience"`
}
