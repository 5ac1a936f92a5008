// Package fixtures holds the mock portal data. Every function returns a
// fresh copy so callers may mutate what they get.
package fixtures

import (
	"time"

	"github.com/julianstephens/onetake/internal/models"
)

func Project() models.Project {
	return models.Project{
		Name:            "Campanha de Marketing Digital",
		Status:          models.ProjectStatusInProgress,
		StartDate:       "01/06/2023",
		Deadline:        "30/07/2023",
		ProgressPercent: 65,
		Description:     "Campanha completa de marketing digital incluindo gestão de redes sociais, criação de conteúdo e estratégia de SEO.",
		Team: []models.Member{
			{ID: 1, Name: "Ana Silva", Role: "Gerente de Projeto"},
			{ID: 2, Name: "Carlos Santos", Role: "Designer"},
			{ID: 3, Name: "Maria Oliveira", Role: "Copywriter"},
		},
		Milestones: []models.Milestone{
			{ID: 1, Title: "Planejamento Estratégico", Status: models.StatusCompleted, Date: "05/06/2023"},
			{ID: 2, Title: "Design de Posts", Status: models.StatusInProgress, Date: "15/06/2023"},
			{ID: 3, Title: "Criação de Conteúdo", Status: models.StatusInProgress, Date: "20/06/2023"},
			{ID: 4, Title: "Otimização SEO", Status: models.StatusPending, Date: "01/07/2023"},
		},
	}
}

func Services() []models.Service {
	return []models.Service{
		{
			ID:          1,
			Name:        "Gestão de Redes Sociais",
			Category:    models.CategorySocial,
			Description: "Gerenciamento completo das suas redes sociais com estratégia personalizada.",
			Icon:        "instagram",
			Features:    []string{"Planejamento de Conteúdo", "Design de Posts", "Relatórios Mensais"},
			Price:       "A partir de R$ 1.500/mês",
		},
		{
			ID:          2,
			Name:        "Criação de Conteúdo",
			Category:    models.CategoryContent,
			Description: "Produção de conteúdo relevante e engajador para sua marca.",
			Icon:        "pen-fancy",
			Features:    []string{"Copywriting", "Fotografia", "Produção de Vídeo"},
			Price:       "A partir de R$ 2.000/mês",
		},
		{
			ID:          3,
			Name:        "Otimização SEO",
			Category:    models.CategoryMarketing,
			Description: "Melhore seu posicionamento nos mecanismos de busca.",
			Icon:        "search",
			Features:    []string{"Análise Técnica", "Otimização de Conteúdo", "Link Building"},
			Price:       "A partir de R$ 1.800/mês",
		},
		{
			ID:          4,
			Name:        "Marketing de Performance",
			Category:    models.CategoryMarketing,
			Description: "Campanhas focadas em resultados e conversões.",
			Icon:        "chart-line",
			Features:    []string{"Google Ads", "Facebook Ads", "Analytics"},
			Price:       "A partir de R$ 2.500/mês",
		},
	}
}

// Thread returns the seed conversation for mode, or nil for an unknown mode.
func Thread(mode models.ChatMode) []models.Message {
	switch mode {
	case models.ChatModeTeam:
		return []models.Message{
			{ID: "team-1", Text: "Olá! Como posso ajudar você hoje?", Sender: models.SenderTeam, DisplayName: "Ana Silva", Timestamp: "09:30"},
			{ID: "team-2", Text: "Gostaria de saber sobre o andamento do projeto.", Sender: models.SenderUser, Timestamp: "09:31"},
			{ID: "team-3", Text: "Claro! O design está em fase final de aprovação. Devo enviar uma prévia ainda hoje.", Sender: models.SenderTeam, DisplayName: "Ana Silva", Timestamp: "09:32"},
		}
	case models.ChatModeAssistant:
		return []models.Message{
			{ID: "ai-1", Text: "Olá! Sou o assistente virtual da One Take. Como posso ajudar?", Sender: models.SenderAssistant, Timestamp: "09:30"},
			{ID: "ai-2", Text: "Preciso de sugestões para melhorar o engajamento nas redes sociais.", Sender: models.SenderUser, Timestamp: "09:31"},
			{ID: "ai-3", Text: "Com base na análise do seu perfil, sugiro: 1) Aumentar a frequência de posts com conteúdo interativo, 2) Utilizar mais recursos visuais como carrosséis e reels, 3) Implementar uma estratégia de hashtags mais direcionada ao seu público.", Sender: models.SenderAssistant, Timestamp: "09:32"},
		}
	}
	return nil
}

func Timeline() []models.TimelineItem {
	return []models.TimelineItem{
		{ID: 1, Title: "Briefing Finalizado", Date: "10 Jun 2023", Status: models.StatusCompleted, Icon: "check-circle"},
		{ID: 2, Title: "Design em Andamento", Date: "12 Jun 2023", Status: models.StatusInProgress, Icon: "paint-brush"},
		{ID: 3, Title: "Revisão do Cliente", Date: "15 Jun 2023", Status: models.StatusPending, Icon: "eye"},
	}
}

func Metrics() models.MetricSeries {
	return models.MetricSeries{
		Labels: []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun"},
		Values: []float64{20, 45, 28, 80, 99, 43},
	}
}

// Updates returns the recent-updates feed relative to now.
func Updates(now time.Time) []models.Update {
	return []models.Update{
		{Title: "Nova versão do design disponível", At: now.Add(-2 * time.Hour)},
	}
}
