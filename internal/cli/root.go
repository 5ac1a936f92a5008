package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/onetake/internal/config"
	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/session"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/storage/sqlite"
	"github.com/julianstephens/onetake/internal/theme"
)

// Context is handed to every command's Run.
type Context struct {
	Store      storage.Provider
	Session    *session.Store
	Themes     *theme.Store
	Config     *config.Config
	ConfigPath string
	Out        io.Writer
}

// NewContext wires the stores described by cfg.
func NewContext(cfg *config.Config, configPath string) (*Context, error) {
	store, err := NewProvider(cfg.Data.Driver)
	if err != nil {
		return nil, err
	}

	mode, err := theme.ParseMode(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}

	var auth session.Authenticator = session.StubAuthenticator{}
	if cfg.RequireFields() {
		auth = session.RequireFields{Next: auth}
	}

	return &Context{
		Store:      store,
		Session:    session.NewStore(auth),
		Themes:     theme.NewStore(mode),
		Config:     cfg,
		ConfigPath: configPath,
		Out:        os.Stdout,
	}, nil
}

// NewProvider returns the fixture source for driver.
func NewProvider(driver string) (storage.Provider, error) {
	switch driver {
	case constants.DataDriverMemory, "":
		return storage.NewMemoryStore(), nil
	case constants.DataDriverSQLite:
		return sqlite.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown data driver %q", driver)
	}
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
