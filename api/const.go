package api

const (
	slackOAuthAuthorizeURL = "https://slack.com/oauth/authorize"
	slackOAuthTokenURL     = "https://slack.com/api/oauth.access"
	slackOAuthScope        = "commands,bot"
	slackCallbackEndpoint  = "/slack/oauth/callback"

	mensaDialogCallbackID = "mensa_dialog"
	blockIDMensaDate      = "mensa_date"
	blockIDMensaLocation  = "mensa_location"

	placeholderImageURL = "https://i.redd.it/fr3ij4z9gti01.jpg"

	loadingMessage        = "Loading menu"
	unknownCommandMessage = "Unknown command"
	unknownDialogMessage  = "Unknown dialog callback_id"

	helpMessage = "You can use following commands\n" +
		" /mensaplan location \t (Start the mensplan dialog)\n" +
		" /mensaplan location [locationId] \t (Display meals for today)\n" +
		" /mensaplan location [locationId] [day] \t (Display meals for this day\n" +
		" /mensaplan settings \t (Set mensa settings - e.g. Language, daily publish)"

	infoMessage = "To use the Mensaplan you can do following things\n" +
		" - Get meals for a mensa\n" +
		" - Get meals for a mensa and the day\n" +
		" - Publish the mensaplan for a mensa daily"
)
