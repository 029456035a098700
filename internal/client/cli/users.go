package cli

import (
	"context"
	"fmt"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
	"github.com/claranceliberi/uni-resource-hub/internal/shared"
)

// Whoami prints the cached identity without contacting the server.
func (a *App) Whoami(ctx context.Context) error {
	identity := a.session.Identity()
	if identity == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (id %d, %s)\n",
		identity.FullName(), identity.Email, identity.ID, identity.AccountStatus)
	return nil
}

// Refresh re-fetches the profile from the server and updates the cache.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.RefreshUser(ctx); err != nil {
		a.handleErr(ctx, err)
		return err
	}
	fmt.Fprintf(a.out, "Profile refreshed: %s.\n", a.session.Identity().FullName())
	return nil
}

// Profile edits first/last name interactively. Blank answers keep the
// current value. The updated identity returned by the server replaces the
// cached one.
func (a *App) Profile(ctx context.Context) error {
	identity := a.session.Identity()
	if identity == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", identity.FirstName), a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", identity.LastName), a.out)
	if err != nil {
		return err
	}

	var upd models.UserUpdate
	if firstName != "" {
		upd.FirstName = &firstName
	}
	if lastName != "" {
		upd.LastName = &lastName
	}
	if upd.FirstName == nil && upd.LastName == nil {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	updated, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}
	if err := a.session.UpdateUser(ctx, updated); err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Profile updated: %s.\n", updated.FullName())
	return nil
}

// Passwd changes the account password. Both passwords are wiped after the
// call.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(current)

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(next)

	if err := a.api.ChangePassword(ctx, string(current), string(next)); err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// Stats prints the user's contribution and bookmark counters.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.api.MyStats(ctx)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}
	bookmarks, err := a.api.BookmarkStats(ctx)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Uploaded resources: %d (%d files, %d links)\n",
		stats.UploadedResources, stats.FileResources, stats.LinkResources)
	fmt.Fprintf(a.out, "Bookmarks: %d (%d files, %d links)\n",
		bookmarks.TotalBookmarks, bookmarks.FileBookmarks, bookmarks.LinkBookmarks)
	fmt.Fprintf(a.out, "Member since: %s\n", stats.AccountCreated.Format("2006-01-02"))
	return nil
}

// Activity prints the user's recent uploads and bookmarks.
func (a *App) Activity(ctx context.Context) error {
	items, err := a.api.RecentActivity(ctx, 10)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No recent activity.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "%s  %s %s (resource %d)\n",
			item.Timestamp.Format("2006-01-02 15:04"), item.Action, item.Type, item.ResourceID)
	}
	return nil
}
