package main

import (
	"context"
	"fmt"

	"github.com/aliefadha/tekiro-cms/client"
	"github.com/spf13/cobra"
)

func newGalleryCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage web and Instagram gallery images",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if kind != client.GalleryWeb && kind != client.GalleryInstagram {
				return fmt.Errorf("--kind must be %q or %q, got %q", client.GalleryWeb, client.GalleryInstagram, kind)
			}
			// Cobra runs only the nearest persistent pre-run.
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&kind, "kind", client.GalleryWeb, "Image kind: web or instagram")

	key := func() []string { return []string{"gallery", kind} }
	invalidate := func() [][]string { return [][]string{{"gallery", kind}, {"dashboard"}} }

	list := &cobra.Command{
		Use:   "list",
		Short: "List images of one kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchAndPrint(cmd, a, key(), func(ctx context.Context) ([]client.GalleryImage, error) {
				return a.client.ListGallery(ctx, kind)
			})
		},
	}

	var title, link, file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Upload an image (Instagram images need --link)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.GalleryImage, error) {
				return a.client.CreateGalleryImage(ctx, kind, client.CreateGalleryImageRequest{Title: title, Link: link, File: upload(file)})
			}, invalidate()...)
		},
	}
	create.Flags().StringVar(&title, "title", "", "Title (required)")
	create.Flags().StringVar(&link, "link", "", "Instagram post link")
	create.Flags().StringVar(&file, "file", "", "Image file (required)")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("file")

	var uTitle, uLink, uFile string
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update an image and optionally replace its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.GalleryImage, error) {
				return a.client.UpdateGalleryImage(ctx, kind, args[0], client.UpdateGalleryImageRequest{Title: uTitle, Link: uLink, File: optionalUpload(uFile)})
			}, invalidate()...)
		},
	}
	update.Flags().StringVar(&uTitle, "title", "", "Title (required)")
	update.Flags().StringVar(&uLink, "link", "", "Instagram post link")
	update.Flags().StringVar(&uFile, "file", "", "Replacement image (optional)")
	_ = update.MarkFlagRequired("title")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteAndPrint(cmd, a, args[0], func(ctx context.Context, id string) error {
				return a.client.DeleteGalleryImage(ctx, kind, id)
			}, invalidate()...)
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}
