package constants

import "time"

const (
	AppName           = "onetake"
	AppTitle          = "One Take Connect"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/onetake/config.yaml"

	// LongDateFormat is used for the dashboard header date
	LongDateFormat = "Monday, 2 January 2006"

	// LoginTimeout bounds a single authentication round-trip
	LoginTimeout = 10 * time.Second

	// LoadTimeout bounds a single screen data load
	LoadTimeout = 5 * time.Second

	// Data drivers
	DataDriverMemory = "memory"
	DataDriverSQLite = "sqlite"

	// Theme modes as they appear in config and flags
	ThemeModeDark  = "dark"
	ThemeModeLight = "light"

	// Screen titles shown in the header bar
	TitleDashboard      = "Meu Painel"
	TitleProjectDetails = "Detalhes do Projeto"
	TitleServiceCatalog = "Nossos Serviços"
	TitleChat           = "Chat"

	// Login copy
	WelcomeText    = "Bem-vindo ao One Take Connect"
	SubtitleText   = "Transparência, eficiência e resultados em tempo real"
	ForgotPassword = "Esqueceu sua senha?"
	LoginButton    = "Entrar"
	LoggingIn      = "Entrando..."

	// Dashboard copy
	Greeting        = "Olá, Cliente!"
	SectionTimeline = "Timeline do Projeto"
	SectionMetrics  = "Métricas de Desempenho"
	SectionUpdates  = "Atualizações Recentes"
	ActionChat      = "Chat"
	ActionProject   = "Projeto"
	ActionServices  = "Serviços"

	// Project copy
	TabOverview     = "Visão Geral"
	TabTeam         = "Equipe"
	TabMilestones   = "Marcos"
	LabelStart      = "Início"
	LabelDeadline   = "Prazo"
	OverallProgress = "Progresso Geral"

	// Catalog copy
	QuoteButton   = "Solicitar Orçamento"
	ContactTitle  = "Precisa de algo personalizado?"
	ContactText   = "Entre em contato conosco para desenvolvermos uma solução sob medida para sua empresa."
	ContactButton = "Falar com um Consultor"

	// Chat copy
	AssistantDisplayName = "AI Assistente"
	TeamModeLabel        = "Equipe One Take"
	TeamPlaceholder      = "Digite sua mensagem..."
	AssistantPlaceholder = "Faça uma pergunta ao AI Assistente..."
	PendingMark          = "enviando"

	// Shared screen states
	LoadingText = "Carregando..."
	RetryHint   = "pressione r para tentar novamente"
)
