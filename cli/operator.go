package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/frankonly/datasets/datasets"
)

const requestTimeout = time.Second * 3

var (
	pathCmd = &cobra.Command{
		Use:   "path NAME",
		Short: "Print the absolute path of a bundled example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				path, err := datasets.Get(args[0])
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			}

			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			path, err := client.Resolve(ctx, wrapperspb.String(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path.GetValue())
			return err
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the bundled examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string

			if local {
				var err error
				if names, err = datasets.Default().Names(); err != nil {
					return err
				}
			} else {
				client, err := Client()
				if err != nil {
					return err
				}

				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()

				list, err := client.List(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				for _, value := range list.GetValues() {
					names = append(names, value.GetStringValue())
				}
			}

			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}

	statsCmd = &cobra.Command{
		Use:   "stats NAME",
		Short: "Print how often the server resolved an example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return fmt.Errorf("stats are kept by the server, drop --local")
			}

			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			stats, err := client.Stats(ctx, wrapperspb.String(args[0]))
			if err != nil {
				return err
			}

			fields := stats.GetFields()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "hits: %d\nmisses: %d\n",
				uint64(fields["hits"].GetNumberValue()), uint64(fields["misses"].GetNumberValue()))
			return err
		},
	}
)
