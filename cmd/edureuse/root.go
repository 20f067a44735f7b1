package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"edureuse/internal/app/admin"
	"edureuse/internal/app/books"
	"edureuse/internal/app/cart"
	"edureuse/internal/app/catalog"
	"edureuse/internal/app/favorites"
	"edureuse/internal/app/messages"
	"edureuse/internal/app/session"
	"edureuse/internal/logging"
	"edureuse/internal/restapi"
)

// app wires the REST client and the per-view services behind the
// command tree. The cookie jar lives for one process run, so commands
// that need a session log in first via the --username flag.
type app struct {
	cfg Config
	log zerolog.Logger

	client    *restapi.Client
	sessions  *session.Resolver
	catalog   *catalog.ViewModel
	favorites *favorites.Reconciler
	cart      *cart.ViewModel
	editor    *books.Editor
	messages  *messages.Service
	admin     *admin.Service

	username string
	password string
}

func (a *app) init() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	client, err := restapi.New(restapi.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Logger:  a.log,
	})
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	a.client = client
	a.sessions = session.New(client)
	a.catalog = catalog.New(client)
	a.favorites = favorites.New(client)
	a.cart = cart.New(client)
	a.editor = books.New(client)
	a.messages = messages.New(client)
	a.admin = admin.New(client, a.sessions)
	return nil
}

// login establishes a session from the --username flag, prompting for
// the password when --password was not given.
func (a *app) login(cmd *cobra.Command) error {
	if a.username == "" {
		return fmt.Errorf("this command needs a session: pass --username")
	}

	password := a.password
	if password == "" {
		var err error
		password, err = readPassword(fmt.Sprintf("Password for %s: ", a.username))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	user, err := a.sessions.Login(cmd.Context(), a.username, password)
	if err != nil {
		return fmt.Errorf("login failed: %s", restapi.ErrorDetail(err))
	}

	a.log.Debug().Str("username", user.Username).Msg("session established")
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "edureuse",
		Short:         "Client for the EduReuse used-textbook marketplace",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.username, "username", "u", "", "account to log in as")
	root.PersistentFlags().StringVar(&a.password, "password", "", "password (prompted when omitted)")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newSignupCmd(a),
		newWhoamiCmd(a),
		newBrowseCmd(a),
		newShowCmd(a),
		newSellCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newFavCmd(a),
		newCartCmd(a),
		newBuyCmd(a),
		newMessagesCmd(a),
		newUsersCmd(a),
	)
	return root
}
