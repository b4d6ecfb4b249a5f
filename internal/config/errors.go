package config

import (
	"fmt"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/model"
)

// configError wraps a load failure so the CLI reports it as a config
// error naming the file.
func configError(path string, err error) *model.CLIError {
	return model.WrapCLIError(
		model.ExitGeneralError,
		model.KindConfig,
		fmt.Sprintf("cannot load config %s", path),
		err,
	)
}
