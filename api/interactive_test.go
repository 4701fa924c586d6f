package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nlopes/slack"
	"github.com/stretchr/testify/require"

	"mensaplan/db"
)

func dialogSubmission(callbackID, mensaID, date string) slack.InteractionCallback {
	var callback slack.InteractionCallback
	callback.Type = slack.InteractionTypeDialogSubmission
	callback.CallbackID = callbackID
	callback.Team.ID = "T1"
	callback.Channel.ID = "C1"
	callback.Submission = map[string]string{"mensa": mensaID, "date": date}
	return callback
}

func TestDialogSubmissionSendsMenu(t *testing.T) {
	mensaSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mensa/m1/tu", r.URL.Path)
		w.Write([]byte(`{"code":200,"message":"ok","data":[{"name":"Schnitzel","type":"main","ingredients":[],"price":{"student":1.9,"employee":2.9,"guest":3.9}}]}`))
	}))
	defer mensaSrv.Close()

	service, fake, store := newTestService(t, mensaSrv.URL, "http://qwant.invalid")
	require.NoError(t, store.SaveTeamSettings(db.TeamSettings{TeamID: "T1", Language: db.LanguageEN}))

	// "2026-8-2" is a dialog-built value: weekday index 2 in the day slot
	service.handleDialogSubmission(context.Background(), dialogSubmission(mensaDialogCallbackID, "m1", "2026-8-2"))

	require.Equal(t, []string{loadingMessage}, fake.texts)
	require.Equal(t, [][2]string{{"C1", "ts-1"}}, fake.deleted)
	require.Len(t, fake.blockPosts, 1)

	blocks := fake.blockPosts[0]
	require.Len(t, blocks, 4) // header, divider, meal section, ingredient context
	require.Equal(t, "No ingredients", contextText(t, blocks[3]))
}

func TestDialogSubmissionEmptyMeals(t *testing.T) {
	mensaSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mensa/m1/mo", r.URL.Path)
		w.Write([]byte(`{"code":200,"message":"ok","data":[]}`))
	}))
	defer mensaSrv.Close()

	service, fake, store := newTestService(t, mensaSrv.URL, "http://qwant.invalid")
	require.NoError(t, store.SaveTeamSettings(db.TeamSettings{TeamID: "T1", Language: db.LanguageEN}))

	service.handleDialogSubmission(context.Background(), dialogSubmission(mensaDialogCallbackID, "m1", "2026-8-1"))

	require.Len(t, fake.blockPosts, 1)
	blocks := fake.blockPosts[0]
	require.Len(t, blocks, 3)
	require.Equal(t, 1, countDividers(blocks))
	require.Equal(t, "*No meals*", sectionText(t, blocks[2]))
}

func TestDialogSubmissionUnknownCallback(t *testing.T) {
	service, fake, _ := newTestService(t, "http://mensa.invalid", "http://qwant.invalid")

	service.handleDialogSubmission(context.Background(), dialogSubmission("other_dialog", "m1", "2026-8-1"))

	require.Equal(t, []string{unknownDialogMessage}, fake.texts)
	require.Empty(t, fake.blockPosts)
}

func TestDialogSubmissionUpstreamFailure(t *testing.T) {
	mensaSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer mensaSrv.Close()

	service, fake, store := newTestService(t, mensaSrv.URL, "http://qwant.invalid")
	require.NoError(t, store.SaveTeamSettings(db.TeamSettings{TeamID: "T1", Language: db.LanguageEN}))

	service.handleDialogSubmission(context.Background(), dialogSubmission(mensaDialogCallbackID, "m1", "2026-8-1"))

	require.Len(t, fake.texts, 1)
	require.Contains(t, fake.texts[0], "Something went wrong")
	require.Empty(t, fake.blockPosts)
}

func TestDialogSubmissionInvalidDay(t *testing.T) {
	service, fake, store := newTestService(t, "http://mensa.invalid", "http://qwant.invalid")
	require.NoError(t, store.SaveTeamSettings(db.TeamSettings{TeamID: "T1", Language: db.LanguageEN}))

	// a real calendar date; day-of-month 15 has no weekday code
	service.handleDialogSubmission(context.Background(), dialogSubmission(mensaDialogCallbackID, "m1", "2026-8-15"))

	require.Len(t, fake.texts, 1)
	require.Contains(t, fake.texts[0], "Something went wrong")
}

func TestBlockActionsAreAcknowledgedOnly(t *testing.T) {
	service, fake, _ := newTestService(t, "http://mensa.invalid", "http://qwant.invalid")

	var callback slack.InteractionCallback
	callback.Type = slack.InteractionTypeBlockActions
	callback.Team.ID = "T1"
	callback.ActionCallback.BlockActions = []*slack.BlockAction{
		{BlockID: blockIDMensaDate, SelectedDate: "2026-09-02"},
	}

	service.handleBlockActions(callback)

	require.Empty(t, fake.texts)
	require.Empty(t, fake.blockPosts)
	require.Empty(t, fake.dialogs)
}

func TestHandleInteractiveHTTP(t *testing.T) {
	service, fake, _ := newTestService(t, "http://mensa.invalid", "http://qwant.invalid")

	payload := `{"type":"dialog_submission","callback_id":"other_dialog","team":{"id":"T1"},"channel":{"id":"C1"},"submission":{}}`
	form := url.Values{}
	form.Set("payload", payload)

	req := httptest.NewRequest(http.MethodPost, "/slack/interactive", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	service.HandleInteractive(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{unknownDialogMessage}, fake.texts)
}
