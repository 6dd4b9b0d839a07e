package domain

// Technician is a member of the fixed roster offered on the last wizard step.
// There is no availability index behind it.
type Technician struct {
	ID          int64
	Name        string
	AvatarURL   string
	Rating      float64
	Reviews     int
	Specialties []string
	Verified    bool
	Experience  string
}

// Plan is a monthly subscription offered on the catalog page
type Plan struct {
	Name     string
	Price    string
	Period   string
	Features []string
	Popular  bool
}

// Service is a single cleaning service sold outside a plan
type Service struct {
	Name  string
	Price string
}

var cities = []string{"Florianópolis", "São José", "Palhoça", "Biguaçu"}

var neighborhoods = map[string][]string{
	"Florianópolis": {"Centro", "Trindade", "Lagoa da Conceição", "Canasvieiras", "Ingleses", "Jurerê"},
	"São José":      {"Centro", "Campinas", "Kobrasol", "Praia Comprida", "Forquilhinha"},
	"Palhoça":       {"Centro", "Pedra Branca", "Pagani", "Enseada de Brito"},
	"Biguaçu":       {"Centro", "Tijuquinhas", "São Miguel", "Sorocaba"},
}

// 12:00 is lunch, no slot
var timeSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

var technicians = []Technician{
	{
		ID:          1,
		Name:        "Carlos Silva",
		AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Carlos",
		Rating:      4.9,
		Reviews:     127,
		Specialties: []string{"Limpeza completa", "Polimento"},
		Verified:    true,
		Experience:  "5 anos",
	},
	{
		ID:          2,
		Name:        "João Santos",
		AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Joao",
		Rating:      4.8,
		Reviews:     98,
		Specialties: []string{"Detalhamento", "Higienização"},
		Verified:    true,
		Experience:  "4 anos",
	},
	{
		ID:          3,
		Name:        "Pedro Oliveira",
		AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Pedro",
		Rating:      4.7,
		Reviews:     85,
		Specialties: []string{"Limpeza interna", "Cristalização"},
		Verified:    true,
		Experience:  "3 anos",
	},
}

var plans = []Plan{
	{
		Name:   "Básico",
		Price:  "R$ 89,90",
		Period: "/mês",
		Features: []string{
			"1 limpeza por mês",
			"Lavagem externa",
			"Limpeza interna básica",
			"Aspiração",
		},
	},
	{
		Name:   "Premium",
		Price:  "R$ 149,90",
		Period: "/mês",
		Features: []string{
			"2 limpezas por mês",
			"Lavagem externa completa",
			"Limpeza interna detalhada",
			"Aspiração profunda",
			"Polimento básico",
			"Hidratação de plásticos",
		},
		Popular: true,
	},
	{
		Name:   "Elite",
		Price:  "R$ 249,90",
		Period: "/mês",
		Features: []string{
			"4 limpezas por mês",
			"Lavagem premium",
			"Detalhamento completo",
			"Polimento profissional",
			"Cristalização de vidros",
			"Higienização com ozônio",
			"Proteção de pintura",
		},
	},
}

var services = []Service{
	{Name: "Lavagem externa completa", Price: "R$ 49,90"},
	{Name: "Limpeza interna detalhada", Price: "R$ 79,90"},
	{Name: "Polimento profissional", Price: "R$ 199,90"},
	{Name: "Cristalização de vidros", Price: "R$ 149,90"},
	{Name: "Higienização com ozônio", Price: "R$ 129,90"},
	{Name: "Proteção de pintura", Price: "R$ 299,90"},
}

// Getters return copies so callers cannot mutate the catalog.

func Cities() []string {
	return append([]string(nil), cities...)
}

// NeighborhoodsOf returns the neighborhoods of city, or an empty list for an
// unknown or empty city
func NeighborhoodsOf(city string) []string {
	return append([]string{}, neighborhoods[city]...)
}

func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

func Technicians() []Technician {
	out := make([]Technician, len(technicians))
	for i, t := range technicians {
		t.Specialties = append([]string(nil), t.Specialties...)
		out[i] = t
	}
	return out
}

func Plans() []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func Services() []Service {
	return append([]Service(nil), services...)
}

func IsCity(city string) bool {
	_, ok := neighborhoods[city]
	return ok
}

func IsNeighborhoodOf(city, neighborhood string) bool {
	for _, n := range neighborhoods[city] {
		if n == neighborhood {
			return true
		}
	}
	return false
}

func IsTimeSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// FindTechnician looks a technician up by display name
func FindTechnician(name string) (Technician, bool) {
	for _, t := range technicians {
		if t.Name == name {
			return t, true
		}
	}
	return Technician{}, false
}
