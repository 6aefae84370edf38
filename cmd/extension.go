package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/etnz/bankroll/config"
)

// RunExtension attempts to find and execute an external bkr-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The extension receives the resolved store and currency in the BANKROLL_*
// environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bkr-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the configuration as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, config.EnvStorePath+"="+cfg.Store.Path)
	cmd.Env = append(cmd.Env, config.EnvStoreBackend+"="+cfg.Store.Backend)
	cmd.Env = append(cmd.Env, config.EnvCurrency+"="+cfg.Currency)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
