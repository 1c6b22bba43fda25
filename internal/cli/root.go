// Package cli implements commands of statelessrnd tool.
package cli

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joomcode/statelessrnd/lcg"
)

const (
	configName = ".statelessrnd"
	envPrefix  = "STATELESSRND"
)

// Command holds configuration shared by all subcommands.
type Command struct {
	cfgFile string
	v       *viper.Viper
	logger  Logger
}

// NewRootCommand returns root command with all subcommands attached.
// If logger is nil, DefaultLogger is used.
func NewRootCommand(logger Logger) *cobra.Command {
	if logger == nil {
		logger = DefaultLogger
	}
	c := &Command{v: viper.New(), logger: logger}

	root := &cobra.Command{
		Use:   "statelessrnd",
		Short: "Stateless minstd_rand compatible generator.",
		Long: `Stateless linear congruential generator, compatible with minstd_rand.
For example:
  statelessrnd seq --seed=42 --count=5
  statelessrnd seq --seed=42 --skip-first=false --discard=100 --count=1
  statelessrnd check --seed=42 --offsets=0,1,100,101,1102
  statelessrnd seq --params=custom --multiplier=1103515245 --increment=12345 --modulus=4294967296`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/"+configName+".yaml)")
	flags.String("params", "minstd", "parameters: minstd, minstd0 or custom")
	flags.Uint64("multiplier", lcg.MinStdMultiplier, "multiplier A for custom parameters")
	flags.Uint64("increment", 0, "increment C for custom parameters")
	flags.Uint64("modulus", lcg.MinStdModulus, "modulus M for custom parameters")
	flags.Uint64("seed", lcg.DefaultSeed, "generator seed")
	c.bind(flags)

	root.AddCommand(c.seqCommand(), c.checkCommand(), c.demoCommand())
	return root
}

// Execute runs root command with process arguments.
func Execute() error {
	return NewRootCommand(nil).Execute()
}

// initConfig reads in config file and ENV variables if set.
func (c *Command) initConfig() error {
	v := c.v
	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return ErrConfig.Wrap(err, "could not find home directory")
		}
		v.AddConfigPath(home)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	switch err.(type) {
	case nil:
		c.logger.Report(LogConfigLoaded, v.ConfigFileUsed())
	case viper.ConfigFileNotFoundError:
		c.logger.Report(LogConfigMissing)
	default:
		return ErrConfig.Wrap(err, "could not read config").WithProperty(EKKey, "config")
	}
	return nil
}

// params returns generator parameters selected by configuration.
func (c *Command) params() (lcg.Custom, error) {
	var (
		p   lcg.Custom
		err error
	)
	switch name := strings.ToLower(c.v.GetString("params")); name {
	case "minstd", "":
		p, err = lcg.NewCustom(lcg.MinStdMultiplier, 0, lcg.MinStdModulus)
	case "minstd0":
		p, err = lcg.NewCustom(lcg.MinStd0Multiplier, 0, lcg.MinStdModulus)
	case "custom":
		p, err = lcg.NewCustom(c.v.GetUint64("multiplier"), c.v.GetUint64("increment"), c.v.GetUint64("modulus"))
		if err != nil {
			return p, ErrConfig.Wrap(err, "invalid custom parameters").WithProperty(EKKey, "params")
		}
	default:
		return p, ErrConfig.New("unknown parameters %q", name).WithProperty(EKKey, "params")
	}
	if err != nil {
		return p, err
	}
	c.logger.Report(LogParams, p.Multiplier(), p.Increment(), p.Modulus())
	return p, nil
}

func (c *Command) bind(flags *pflag.FlagSet) {
	// BindPFlags fails only for nil flag set.
	_ = c.v.BindPFlags(flags)
}
