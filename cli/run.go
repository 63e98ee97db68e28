package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/viant/docauth/mock"
	"github.com/viant/docauth/session"
)

// Run parses args and executes one action
func Run(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return Execute(ctx, args, os.Stdout, nil)
}

// Execute runs an action writing output to writer
func Execute(ctx context.Context, args []string, writer io.Writer, clipboard session.Clipboard) error {
	options := &Options{}
	rest, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("missing action: login, logout, status, copy, call or mock")
	}
	action, params := rest[0], rest[1:]
	if action == "mock" {
		return serveMock(ctx, options, writer)
	}
	service, err := New(ctx, options, writer, clipboard)
	if err != nil {
		return err
	}
	switch action {
	case "login":
		return service.Login(ctx)
	case "logout":
		return service.Logout(ctx)
	case "status":
		return service.Status(ctx)
	case "copy":
		return service.Copy(ctx)
	case "call":
		if len(params) < 2 {
			return fmt.Errorf("usage: call METHOD PATH [BODY]")
		}
		var body io.Reader
		if len(params) > 2 {
			body = strings.NewReader(params[2])
		}
		return service.Call(ctx, params[0], params[1], body)
	}
	return fmt.Errorf("unsupported action: %v", action)
}

func serveMock(ctx context.Context, options *Options, writer io.Writer) error {
	var mockOptions []mock.Option
	if options.Email != "" {
		mockOptions = append(mockOptions, mock.WithAccount(options.Email, options.Password))
	}
	if options.Bridge.CSRFToken != "" {
		mockOptions = append(mockOptions, mock.WithCSRFToken(options.Bridge.CSRFToken))
	}
	if len(options.Origins) > 0 {
		mockOptions = append(mockOptions, mock.WithCORS(&mock.Cors{AllowOrigins: options.Origins, AllowCredentials: true}))
	}
	service, err := mock.NewService(mockOptions...)
	if err != nil {
		return err
	}
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(options.Port))
	if err != nil {
		return err
	}
	server := &http.Server{Handler: service.Handler()}
	baseURL := "http://localhost:" + strconv.Itoa(options.Port)
	_, _ = fmt.Fprintf(writer, "login:  %s%s\nlogout: %s%s\ncsrf:   %s\n", baseURL, mock.LoginPath, baseURL, mock.LogoutPath, service.CSRFToken)
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	if err = server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
