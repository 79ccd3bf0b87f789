package api

import (
	"reflect"
	"testing"

	"github.com/cealmeidanos/octofit/internal/models"
	"github.com/gofiber/fiber/v2"
)

func createTestTeam(t *testing.T, app *fiber.App, name string, description string) models.Team {
	t.Helper()

	response := sendJSON(t, app, fiber.MethodPost, "/api/teams", map[string]any{
		"name":        name,
		"description": description,
	})
	expectStatus(t, response, fiber.StatusCreated)
	return decodeBody[models.Team](t, response)
}

func TestCreateTeamRejectsDuplicateName(t *testing.T) {
	app, _ := newTestApp(t)

	createTestTeam(t, app, "Team Marvel", "first")

	response := sendJSON(t, app, fiber.MethodPost, "/api/teams", map[string]any{
		"name": "Team Marvel",
	})
	expectErrorMessage(t, response, fiber.StatusBadRequest, "team name already exists")
}

func TestCreateTeamAdoptsUsersWithMatchingLabel(t *testing.T) {
	app, _ := newTestApp(t)

	// The label exists before the team does; creation picks the user up.
	team := "Team Late"
	createTestUser(t, app, "early@example.com", "Early Bird", &team)

	created := createTestTeam(t, app, "Team Late", "formed after its first member")
	if !reflect.DeepEqual(created.Members, []string{"early@example.com"}) {
		t.Fatalf("expected the pre-existing user adopted, got %v", created.Members)
	}
}

func TestTeamMembersReturnsEmailList(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTestTeam(t, app, "Team DC", "")
	team := "Team DC"
	createTestUser(t, app, "bruce.wayne@dc.com", "Bruce Wayne", &team)
	createTestUser(t, app, "clark.kent@dc.com", "Clark Kent", &team)

	response := sendJSON(t, app, fiber.MethodGet, "/api/teams/"+itoa(created.ID)+"/members", nil)
	expectStatus(t, response, fiber.StatusOK)
	body := decodeBody[map[string][]string](t, response)

	if !reflect.DeepEqual(body["members"], []string{"bruce.wayne@dc.com", "clark.kent@dc.com"}) {
		t.Fatalf("expected both members in creation order, got %v", body["members"])
	}
}

func TestUpdateTeamRenameRematchesUsers(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTestTeam(t, app, "Team Old", "")
	team := "Team New"
	createTestUser(t, app, "waiting@example.com", "Waiting", &team)

	response := sendJSON(t, app, fiber.MethodPut, "/api/teams/"+itoa(created.ID), map[string]any{
		"name": "Team New",
	})
	expectStatus(t, response, fiber.StatusOK)
	renamed := decodeBody[models.Team](t, response)

	if renamed.Name != "Team New" {
		t.Fatalf("expected renamed team, got %q", renamed.Name)
	}
	if !reflect.DeepEqual(renamed.Members, []string{"waiting@example.com"}) {
		t.Fatalf("expected rename to adopt the matching user, got %v", renamed.Members)
	}
}

func TestDeleteTeamLeavesUserLabelsDangling(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTestTeam(t, app, "Team Gone", "")
	team := "Team Gone"
	user := createTestUser(t, app, "left.behind@example.com", "Left Behind", &team)

	response := sendJSON(t, app, fiber.MethodDelete, "/api/teams/"+itoa(created.ID), nil)
	expectStatus(t, response, fiber.StatusNoContent)

	reloaded := sendJSON(t, app, fiber.MethodGet, "/api/users/"+itoa(user.ID), nil)
	expectStatus(t, reloaded, fiber.StatusOK)
	stranded := decodeBody[models.User](t, reloaded)

	if stranded.Team == nil || *stranded.Team != "Team Gone" {
		t.Fatalf("expected the team label to survive the team deletion, got %v", stranded.Team)
	}
}
