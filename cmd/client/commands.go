// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-cart/internal/adapter"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/models"
)

// tokenEnv holds a previously issued access token for cart commands.
const tokenEnv = "GO_CART_TOKEN"

var errUsage = errors.New("invalid usage")

type cli struct {
	adapter   adapter.ServerAdapter
	out       io.Writer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// run dispatches args[0] as a command. Results are printed as indented JSON.
func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}

	name, args := args[0], args[1:]
	switch name {
	case "login":
		return c.login(ctx, args)
	case "protected":
		return c.protected(ctx, args)
	case "list":
		return c.list(ctx, args)
	case "add":
		return c.add(ctx, args)
	case "update":
		return c.update(ctx, args)
	case "delete":
		return c.delete(ctx, args)
	case "version":
		return c.version(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	resp, err := c.adapter.Login(ctx, models.User{Username: *username, Password: *password})
	if err != nil {
		return err
	}
	return c.print(resp)
}

func (c *cli) protected(ctx context.Context, args []string) error {
	fs := newFlagSet("protected")
	auth := authFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := c.authenticate(ctx, auth); err != nil {
		return err
	}

	msg, err := c.adapter.Protected(ctx)
	if err != nil {
		return err
	}
	return c.print(msg)
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	auth := authFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := c.authenticate(ctx, auth); err != nil {
		return err
	}

	cart, err := c.adapter.List(ctx)
	if err != nil {
		return err
	}
	return c.print(cart)
}

func (c *cli) add(ctx context.Context, args []string) error {
	var item models.CartItem

	fs := newFlagSet("add")
	auth := authFlags(fs)
	fs.IntVar(&item.ProductID, "id", 0, "product id")
	fs.StringVar(&item.Name, "name", "", "product name")
	fs.StringVar(&item.Image, "image", "", "product image URL")
	fs.Float64Var(&item.Price, "price", 0, "unit price")
	fs.IntVar(&item.Quantity, "quantity", 1, "quantity")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := c.authenticate(ctx, auth); err != nil {
		return err
	}

	msg, err := c.adapter.Add(ctx, item)
	if err != nil {
		return err
	}
	return c.print(msg)
}

func (c *cli) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	auth := authFlags(fs)
	productID := fs.Int("id", 0, "product id")
	quantity := fs.Int("quantity", 0, "new quantity")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := c.authenticate(ctx, auth); err != nil {
		return err
	}

	msg, err := c.adapter.Update(ctx, *productID, *quantity)
	if err != nil {
		return err
	}
	return c.print(msg)
}

func (c *cli) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	auth := authFlags(fs)
	productID := fs.Int("id", 0, "product id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := c.authenticate(ctx, auth); err != nil {
		return err
	}

	msg, err := c.adapter.Delete(ctx, *productID)
	if err != nil {
		return err
	}
	return c.print(msg)
}

func (c *cli) version(ctx context.Context) error {
	serverVersion, err := c.adapter.Version(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("could not fetch server version")
		serverVersion = "unavailable"
	}

	return c.print(map[string]string{
		"build_version":  c.buildInfo.BuildVersion(),
		"build_date":     c.buildInfo.BuildDate(),
		"build_commit":   c.buildInfo.BuildCommit(),
		"server_version": serverVersion,
	})
}

type authOptions struct {
	token    *string
	username *string
	password *string
}

func authFlags(fs *flag.FlagSet) authOptions {
	return authOptions{
		token:    fs.String("token", os.Getenv(tokenEnv), "access token (env "+tokenEnv+")"),
		username: fs.String("u", "", "username to log in with when no token is given"),
		password: fs.String("p", "", "password to log in with when no token is given"),
	}
}

// authenticate stores an explicit token, or logs in with the given
// credentials. The adapter reports a missing token on the next call.
func (c *cli) authenticate(ctx context.Context, opts authOptions) error {
	if *opts.token != "" {
		c.adapter.SetToken(*opts.token)
		return nil
	}
	if *opts.username == "" {
		return nil
	}

	_, err := c.adapter.Login(ctx, models.User{Username: *opts.username, Password: *opts.password})
	return err
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
