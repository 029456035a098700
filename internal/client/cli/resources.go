package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/claranceliberi/uni-resource-hub/internal/client/api"
	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
	"github.com/claranceliberi/uni-resource-hub/internal/filex"
)

const pageSize = 20

// Search prompts for a query and optional type filter, then prints a page
// of matching resources. Blank answers are simply left out of the request.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search query (blank for all)", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type: file, link or blank for both", a.out)
	if err != nil {
		return err
	}

	filter := models.ResourceFilter{Query: query, Limit: pageSize}
	switch strings.ToLower(kind) {
	case "file":
		filter.Type = models.ResourceFile
	case "link":
		filter.Type = models.ResourceLink
	}

	page, err := a.api.ListResources(ctx, filter)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	a.printPage(page)
	return nil
}

func (a *App) printPage(page *models.ResourcePage) {
	if len(page.Resources) == 0 {
		fmt.Fprintln(a.out, "No resources found.")
		return
	}

	for _, res := range page.Resources {
		tags := make([]string, 0, len(res.Tags))
		for _, tag := range res.Tags {
			tags = append(tags, "#"+tag.Name)
		}
		fmt.Fprintf(a.out, "%4d  [%s]  %s  %s\n", res.ID, res.ResourceType, res.Title, strings.Join(tags, " "))
	}

	fmt.Fprintf(a.out, "Showing %d of %d", len(page.Resources), page.Total)
	if page.HasMore {
		fmt.Fprint(a.out, " (more available)")
	}
	fmt.Fprintln(a.out)
}

// Show fetches one resource and prints its full card.
func (a *App) Show(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter resource id", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.GetResource(ctx, id)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "%s (id %d, %s)\n", res.Title, res.ID, res.ResourceType)
	if res.Description != nil {
		fmt.Fprintln(a.out, *res.Description)
	}
	if res.URL != nil {
		fmt.Fprintf(a.out, "URL: %s\n", *res.URL)
	}
	if res.FileSize != nil {
		fmt.Fprintf(a.out, "Size: %d bytes\n", *res.FileSize)
	}
	if res.Uploader != nil {
		fmt.Fprintf(a.out, "Uploaded by %s on %s\n", res.Uploader.FullName(), res.UploadDate.Format("2006-01-02"))
	}
	for _, cat := range res.Categories {
		fmt.Fprintf(a.out, "Category: %s\n", cat.Name)
	}
	if len(res.Tags) > 0 {
		names := make([]string, 0, len(res.Tags))
		for _, tag := range res.Tags {
			names = append(names, tag.Name)
		}
		fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(names, ", "))
	}
	return nil
}

// Upload publishes a local file as a new resource, with optional
// categories and tags.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter file path", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}
	catText, err := getSimpleText(a.reader, "Category ids, comma-separated (optional)", a.out)
	if err != nil {
		return err
	}
	categoryIDs, err := parseIDList(catText)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	tagText, err := getSimpleText(a.reader, "Tags, comma-separated (optional)", a.out)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot open file:", err)
		return err
	}
	defer func() { _ = file.Close() }()

	res, err := a.api.Upload(ctx, api.UploadRequest{
		Title:       title,
		Description: description,
		CategoryIDs: categoryIDs,
		TagNames:    parseNameList(tagText),
		FileName:    filepath.Base(path),
		File:        file,
	})
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %q as resource %d.\n", res.Title, res.ID)
	return nil
}

// AddLink registers an external URL as a link resource.
func (a *App) AddLink(ctx context.Context) error {
	url, err := getSimpleText(a.reader, "Enter URL", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}
	catText, err := getSimpleText(a.reader, "Category ids, comma-separated (optional)", a.out)
	if err != nil {
		return err
	}
	categoryIDs, err := parseIDList(catText)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	tagText, err := getSimpleText(a.reader, "Tags, comma-separated (optional)", a.out)
	if err != nil {
		return err
	}

	in := models.ResourceCreate{
		Title:        title,
		ResourceType: models.ResourceLink,
		URL:          &url,
		CategoryIDs:  categoryIDs,
		TagNames:     parseNameList(tagText),
	}
	if description != "" {
		in.Description = &description
	}

	res, err := a.api.CreateResource(ctx, in)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Added %q as resource %d.\n", res.Title, res.ID)
	return nil
}

// Download saves a file resource into the configured download directory,
// using the server-suggested file name when one is provided.
func (a *App) Download(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter resource id", a.out)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	name, size, err := a.api.Download(ctx, id, &buf)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot create download directory:", err)
		return err
	}

	fallback := fmt.Sprintf("resource-%d", id)
	dest := filepath.Join(dir, filex.SafeFileName(name, fallback))
	if err := os.WriteFile(dest, buf.Bytes(), 0o660); err != nil {
		fmt.Fprintln(a.out, "Cannot write file:", err)
		return err
	}

	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", size, dest)
	return nil
}
