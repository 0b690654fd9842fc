package cli

import (
	"budget/internal/api"
	"budget/internal/config"
	"budget/internal/currency"
	applog "budget/internal/log"
	"budget/internal/localstore"
	"budget/internal/session"
)

// App holds the wired client: state store, session and currency stores, and
// the domain service modules.
type App struct {
	Config *config.Config
	Logger *applog.Logger
	State  localstore.Store

	Session  *session.Store
	Currency *currency.Store
	Catalog  *currency.Catalog

	Auth     *api.AuthService
	Expenses *api.ExpenseService
	Budgets  *api.BudgetService
	Admin    *api.AdminService
}

// NewApp builds the client over the given state store. The token provider
// reads the store on every call, so services observe token rotation without
// rewiring.
func NewApp(cfg *config.Config, logger *applog.Logger, state localstore.Store) *App {
	tokens := &api.StoreTokenProvider{Store: state}
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, tokens,
		logger.WithComponent(applog.ComponentAPI).Logger)

	auth := api.NewAuthService(client)
	sessionStore := session.NewStore(state, auth, cfg.DefaultCurrency,
		logger.WithComponent(applog.ComponentSession).Logger)
	currencyStore := currency.NewStore(sessionStore, cfg.DefaultCurrency,
		logger.WithComponent(applog.ComponentCurrency).Logger)

	return &App{
		Config:   cfg,
		Logger:   logger,
		State:    state,
		Session:  sessionStore,
		Currency: currencyStore,
		Catalog:  currency.NewCatalog(state, logger.WithComponent(applog.ComponentCurrency).Logger),
		Auth:     auth,
		Expenses: api.NewExpenseService(client),
		Budgets:  api.NewBudgetService(client),
		Admin:    api.NewAdminService(client),
	}
}

// Close releases the state store.
func (a *App) Close() error {
	return a.State.Close()
}
