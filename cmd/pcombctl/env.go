package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// applyEnvOverrides maps PCOMBCTL_<FLAG> environment variables onto any flag
// the user did not set explicitly, the way a cobra+viper+pflag CLI layers
// env vars under flags and over file config.
func applyEnvOverrides(cmd *cobra.Command) error {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("pcombctl")

	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("pcombctl: mapping env vars to flags: %s", strings.Join(errs, "; "))
	}
	return nil
}
