package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/xxxsen/ncfile/cmd/ncc/config"
	"github.com/xxxsen/ncfile/ncclient"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
)

const (
	defaultConfigFileEnv = "NCC_CONFIG"
)

var cmds []CreateFunc

type Context struct {
	Client ncclient.IClient
	Config *config.Config
}

// NewClient 构建一个新的客户端实例, 并发场景下每个worker独占一个
func (c *Context) NewClient() (ncclient.IClient, error) {
	return ncclient.New(
		ncclient.WithHost(c.Config.Host),
		ncclient.WithAuth(c.Config.User, c.Config.Password),
		ncclient.WithDebugMode(c.Config.DebugMode, os.Stderr),
		ncclient.WithTimeout(time.Duration(c.Config.Timeout)*time.Second),
	)
}

type CreateFunc func(ctx *Context) *cobra.Command

func register(cr CreateFunc) {
	cmds = append(cmds, cr)
}

func initContext(ctx *Context, cfgs []string) error {
	var c *config.Config
	err := fmt.Errorf("no config file specified")
	for _, cfg := range cfgs {
		if len(cfg) == 0 {
			continue
		}
		c, err = config.Parse(cfg)
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("no valid config file found, last err:%w", err)
	}
	ctx.Config = c
	logger.Init("", c.LogLevel, 0, 0, 0, true)
	cli, err := ctx.NewClient()
	if err != nil {
		return err
	}
	ctx.Client = cli
	return nil
}

func NewRoot() *cobra.Command {
	var configFile string
	ctx := &Context{}
	var rootCmd = &cobra.Command{
		Use:           "ncc",
		Short:         "NextCloud file CLI tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	for _, cr := range cmds {
		rootCmd.AddCommand(cr(ctx))
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		envConfigFile, _ := os.LookupEnv(defaultConfigFileEnv)
		return initContext(ctx, []string{configFile, "/etc/ncc/ncc_config.json", envConfigFile})
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	return rootCmd
}
