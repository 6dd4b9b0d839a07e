// Package catalog serves the static content of the app: landing page,
// subscription plans and the technician roster.
package catalog

import (
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

const (
	appName = "LimpMe"
	tagline = "Sua limpeza automotiva por assinatura"
)

// Service каталог. Внешние ссылки приходят из конфигурации.
type Service struct {
	plansURL    string
	whatsAppURL string
}

func NewService(plansURL, whatsAppURL string) *Service {
	return &Service{plansURL: plansURL, whatsAppURL: whatsAppURL}
}

// Landing данные стартовой страницы
func (s *Service) Landing() *LandingResponse {
	return &LandingResponse{
		AppName: appName,
		Tagline: tagline,
		Highlights: []string{
			"Limpeza completa",
			"Profissionais qualificados",
			"Agendamento fácil",
		},
		Actions: []Action{
			{Label: "Agendamentos", Path: domain.PathAuth},
			{Label: "Consulte nossos planos e serviços", Path: domain.PathPlans, External: s.plansURL},
			{Label: "Contatar Central de atendimento", External: s.whatsAppURL},
		},
	}
}

// Plans планы подписки и разовые услуги
func (s *Service) Plans() *PlansResponse {
	plans := domain.Plans()
	services := domain.Services()

	resp := &PlansResponse{
		Plans:    make([]PlanResponse, 0, len(plans)),
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, p := range plans {
		resp.Plans = append(resp.Plans, PlanResponse(p))
	}
	for _, sv := range services {
		resp.Services = append(resp.Services, ServiceResponse(sv))
	}
	return resp
}

// Technicians список техников для последнего шага
func Technicians(list []domain.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(list))
	for _, t := range list {
		out = append(out, TechnicianResponse(t))
	}
	return out
}
