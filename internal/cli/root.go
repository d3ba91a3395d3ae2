package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/lovecount/internal/backup"
	"github.com/julianstephens/lovecount/internal/config"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/notifier"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/storage"
)

// ErrNoProfile is returned by commands that need a countdown target.
var ErrNoProfile = errors.New("no couple profile yet, run 'lovecount setup' first")

type Context struct {
	Store    storage.Provider
	State    *state.Manager
	Config   *config.Config
	Picker   *love.Picker
	Notifier notifier.Sender

	// Out and In default to stdout and stdin.
	Out io.Writer
	In  io.Reader
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Confirm asks a yes/no question on In. Anything but y/yes is a no.
func (c *Context) Confirm(prompt string) (bool, error) {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// BackupManager returns a backup manager for the current store.
func (c *Context) BackupManager() *backup.Manager {
	dir := ""
	if c.Config != nil {
		dir = c.Config.BackupRoot()
	} else {
		dir = (&config.Config{Store: c.Store.GetConfigPath()}).BackupRoot()
	}
	return backup.NewManager(c.Store, dir)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if storage.KindOf(c.Store.GetConfigPath()) == storage.KindMemory {
		return
	}
	if _, err := c.BackupManager().CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// RequireProfile loads the profile or fails with ErrNoProfile.
func (c *Context) RequireProfile() (*models.CoupleProfile, error) {
	p, err := c.State.LoadProfile()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

// ParsePartner accepts boy/girl or the partner's name or nickname from the profile.
func (c *Context) ParsePartner(s string) (models.Partner, error) {
	if p, err := models.ParsePartner(s); err == nil {
		return p, nil
	}
	if prof, _ := c.State.LoadProfile(); prof != nil {
		for _, p := range models.Partners {
			if strings.EqualFold(s, prof.Name(p)) || strings.EqualFold(s, prof.DisplayName(p)) {
				return p, nil
			}
		}
	}
	return "", state.ErrInvalidPartner
}

// PartnerName is the display name for p, or "boy"/"girl" without a profile.
func (c *Context) PartnerName(p models.Partner) string {
	if prof, _ := c.State.LoadProfile(); prof != nil {
		if name := prof.DisplayName(p); name != "" {
			return name
		}
	}
	return string(p)
}

