package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"content_intelligence/internal/adaptors"
	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/service"
	"content_intelligence/internal/service/corpus"
	"content_intelligence/internal/service/linkcheck"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	locale      string
	siteHost    string
	collections []string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "seoctl",
		Short:         "Offline SEO content analysis",
		Long:          `seoctl scores documents and audits a corpus of JSON document exports without a running server.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.locale, "locale", "", "Content locale (en, fr)")
	root.PersistentFlags().StringVar(&opts.siteHost, "site-host", "", "Host whose absolute links count as internal")
	root.PersistentFlags().StringSliceVar(&opts.collections, "collections", nil, "Collections to load, all when empty")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging on stderr")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newCorpusCmd(opts, "graph", "Build the internal link graph of a corpus directory", func(ctx context.Context, s *service.ContentService, opts *options) (any, error) {
			return s.LinkGraph(ctx, opts.collections)
		}),
		newCorpusCmd(opts, "audit", "Audit a corpus directory for orphan, weak and broken pages", func(ctx context.Context, s *service.ContentService, opts *options) (any, error) {
			return s.SitemapAudit(ctx, opts.collections)
		}),
		newResearchCmd(opts),
		newCorpusCmd(opts, "cannibalization", "Find focus keywords targeted by more than one document", func(ctx context.Context, s *service.ContentService, opts *options) (any, error) {
			return s.Cannibalization(ctx, opts.collections, opts.locale)
		}),
		newCheckCmd(opts),
	)
	return root
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	var checkLinks bool
	cmd := &cobra.Command{
		Use:   "analyze [FILE]",
		Short: "Score the documents of a JSON export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := adaptors.ReadDocumentFile(args[0])
			if err != nil {
				return err
			}
			s := newService(opts, nil)

			type result struct {
				ID string `json:"id,omitempty"`
				service.AnalyzeResponse
			}
			results := make([]result, 0, len(docs))
			for _, doc := range docs {
				resp, err := s.Analyze(cmd.Context(), service.AnalyzeRequest{
					Input:      doc.Input,
					Locale:     opts.locale,
					CheckLinks: checkLinks,
				})
				if err != nil {
					return errors.Wrap(err, `failed to analyze `+doc.ID)
				}
				results = append(results, result{ID: doc.ID, AnalyzeResponse: resp})
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().BoolVar(&checkLinks, "check-links", false, "Also check external links")
	return cmd
}

type corpusRun func(ctx context.Context, s *service.ContentService, opts *options) (any, error)

func newCorpusCmd(opts *options, name, short string, run corpusRun) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [DIR]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newCorpusService(opts, args[0])
			if err != nil {
				return err
			}
			out, err := run(cmd.Context(), s, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newResearchCmd(opts *options) *cobra.Command {
	var maxPerType int
	cmd := newCorpusCmd(opts, "research", "Suggest keywords from the vocabulary of a corpus directory", func(ctx context.Context, s *service.ContentService, opts *options) (any, error) {
		return s.KeywordResearch(ctx, opts.collections, opts.locale, maxPerType)
	})
	cmd.Flags().IntVar(&maxPerType, "max", 0, "Maximum suggestions per type")
	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [URL...]",
		Short: "Check that external URLs are reachable",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := newService(opts, nil).CheckLinks(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), statuses)
		},
	}
}

func newLogger(opts *options) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newService(opts *options, loader *corpus.Loader) *service.ContentService {
	logger := newLogger(opts)
	client := adaptors.NewWebClient(linkcheck.DefaultTimeout, logger, adaptors.WithDialGuard(linkcheck.DialGuard))
	return service.NewContentService(logger, service.Dependencies{
		Corpus:  loader,
		Checker: linkcheck.NewChecker(logger, client, nil, linkcheck.Options{}),
		Static:  models.SeoConfig{Locale: opts.locale, SiteHost: opts.siteHost},
	})
}

func newCorpusService(opts *options, dir string) (*service.ContentService, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, errors.Invalid(dir + ` is not a directory`)
	}
	logger := newLogger(opts)
	source := adaptors.NewFileDocumentSource(dir, logger)
	collections := opts.collections
	if len(collections) == 0 {
		var err error
		if collections, err = source.Collections(); err != nil {
			return nil, err
		}
	}
	return newService(opts, corpus.NewLoader(logger, source, collections, 0)), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
