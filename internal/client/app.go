// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MKhiriev/media-vault/internal/adapter"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/models"
)

const (
	cmdInfo     = "info"
	cmdDownload = "download"
	cmdAudio    = "audio"
	cmdHealth   = "health"
)

type App struct {
	adapter adapter.ServerAdapter
	args    []string
	dir     string
	out     io.Writer

	logger *logger.Logger
}

// NewApp creates a client that runs args (sub-command first) against the
// server behind serverAdapter. Downloads are saved into dir; command output
// goes to out.
func NewApp(serverAdapter adapter.ServerAdapter, args []string, dir string, out io.Writer, logger *logger.Logger) (*App, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: expected one of %s, %s, %s, %s", ErrUnknownCommand, cmdInfo, cmdDownload, cmdAudio, cmdHealth)
	}

	return &App{
		adapter: serverAdapter,
		args:    args,
		dir:     dir,
		out:     out,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	command, rest := a.args[0], a.args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	switch command {
	case cmdInfo:
		return a.info(ctx, rest)
	case cmdDownload:
		return a.download(ctx, rest)
	case cmdAudio:
		return a.audio(ctx, rest)
	case cmdHealth:
		return a.health(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) info(ctx context.Context, args []string) error {
	videoURL, _, err := urlAndOption(args)
	if err != nil {
		return err
	}

	info, err := a.adapter.Info(ctx, videoURL)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	printInfo(a.out, info)
	return nil
}

func (a *App) download(ctx context.Context, args []string) error {
	videoURL, itag, err := urlAndOption(args)
	if err != nil {
		return err
	}

	result, err := a.adapter.Download(ctx, models.DownloadRequest{URL: videoURL, Itag: itag}, a.dir)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	printResult(a.out, result)
	return nil
}

func (a *App) audio(ctx context.Context, args []string) error {
	videoURL, quality, err := urlAndOption(args)
	if err != nil {
		return err
	}

	result, err := a.adapter.Audio(ctx, models.AudioRequest{URL: videoURL, Quality: quality}, a.dir)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	printResult(a.out, result)
	return nil
}

func (a *App) health(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return ErrTooManyArgs
	}

	health, err := a.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%s (%s)\n", health.Status, health.Timestamp)
	return err
}

// urlAndOption splits "<url> [option]".
func urlAndOption(args []string) (string, string, error) {
	switch len(args) {
	case 0:
		return "", "", ErrMissingURL
	case 1:
		return args[0], "", nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", ErrTooManyArgs
	}
}

func printInfo(out io.Writer, info models.InfoResponse) {
	fmt.Fprintf(out, "Title:    %s\n", info.Title)
	fmt.Fprintf(out, "Author:   %s\n", info.Author)
	fmt.Fprintf(out, "Duration: %ss\n", info.Duration)
	fmt.Fprintf(out, "Views:    %s\n", info.ViewCount)
	fmt.Fprintf(out, "Video ID: %s\n", info.VideoID)
	if len(info.Formats) == 0 {
		fmt.Fprintln(out, "No muxed formats available")
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, formatsTable(info.Formats))
}

func formatsTable(formats []models.FormatSummary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Itag", "Quality", "Container", "Size", "Codecs"})
	for _, f := range formats {
		tw.AppendRow(table.Row{strconv.Itoa(f.Itag), f.Quality, f.Container, f.Size, f.Codecs})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func printResult(out io.Writer, result models.DownloadResult) {
	fmt.Fprintf(out, "Saved %s (%d bytes, %s)\n", result.Path, result.Bytes, result.ContentType)
}
