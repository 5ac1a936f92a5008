package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/tui/components/catalog"
)

type ServicesCmd struct {
	Category string `help:"Category to list (all, social, content, marketing)." default:"all" enum:"all,social,content,marketing"`
}

func (c *ServicesCmd) Run(ctx *Context) error {
	category, ok := models.ParseCategory(c.Category)
	if !ok {
		return fmt.Errorf("unknown category: %s", c.Category)
	}

	if err := ctx.Store.Load(context.Background()); err != nil {
		return err
	}
	defer ctx.Store.Close()

	services, err := ctx.Store.GetServices(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get services: %w", err)
	}

	out := ctx.out()
	fmt.Fprintf(out, "%s:\n", constants.TitleServiceCatalog)
	for _, svc := range catalog.Filter(services, category) {
		fmt.Fprintf(out, "  [%s] %s - %s\n", svc.Category, svc.Name, svc.Price)
		fmt.Fprintf(out, "      %s\n", svc.Description)
		fmt.Fprintf(out, "      %s\n", strings.Join(svc.Features, ", "))
	}
	fmt.Fprintf(out, "\n%s\n  %s\n", constants.ContactTitle, constants.ContactText)
	return nil
}
