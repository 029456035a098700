package cli

import (
	"context"
	"fmt"
)

// Bookmarks lists the user's bookmarked resources.
func (a *App) Bookmarks(ctx context.Context) error {
	bookmarks, err := a.api.ListBookmarks(ctx, pageSize, 0)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(a.out, "No bookmarks yet.")
		return nil
	}
	for _, bm := range bookmarks {
		title := fmt.Sprintf("resource %d", bm.ResourceID)
		if bm.Resource != nil {
			title = bm.Resource.Title
		}
		fmt.Fprintf(a.out, "%4d  %s  (bookmarked %s)\n", bm.ResourceID, title, bm.BookmarkDate.Format("2006-01-02"))
	}
	return nil
}

// Bookmark flips the bookmark on a resource. The direction comes back from
// the server, so rapid repeats stay consistent with its state.
func (a *App) Bookmark(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter resource id", a.out)
	if err != nil {
		return err
	}

	result, err := a.api.ToggleBookmark(ctx, id)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	if result.Message != "" {
		fmt.Fprintln(a.out, result.Message)
	} else {
		fmt.Fprintf(a.out, "Bookmark %s.\n", result.Action)
	}
	return nil
}
