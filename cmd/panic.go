package cmd

import (
	"context"
	"fmt"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/ui"
)

func (h *Handler) Panic(ctx context.Context, i interface{}) error {
	fmt.Printf("🚨 %s\n", ui.RedText("Something went badly wrong"))
	fmt.Println(i)
	fmt.Printf("Please report this at %s\n", fmt.Sprintf(constants.GithubURLMap["repo"], "merce-fra", "snifftraffic")+"/issues")
	// suppress errors, the panic text is already printed
	return nil
}
