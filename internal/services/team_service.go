package services

import (
	"fmt"

	"github.com/cealmeidanos/octofit/internal/db"
)

// TeamService keeps Team.Members in line with user-team assignments:
// a team's member list is exactly the emails of users whose team label equals
// the team's name, in user-creation order. It must run after every write that
// can change an assignment.
type TeamService struct {
	teams *db.TeamRepository
	users *db.UserRepository
}

func NewTeamService(teams *db.TeamRepository, users *db.UserRepository) *TeamService {
	return &TeamService{teams: teams, users: users}
}

// SyncMembers resynchronizes the member list of every team.
func (service *TeamService) SyncMembers() error {
	teams, err := service.teams.List()
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}

	for _, team := range teams {
		members, err := service.memberEmails(team.Name)
		if err != nil {
			return fmt.Errorf("collect members for team %s: %w", team.Name, err)
		}
		if err := service.teams.UpdateMembers(team.ID, members); err != nil {
			return fmt.Errorf("update members for team %s: %w", team.Name, err)
		}
	}
	return nil
}

func (service *TeamService) memberEmails(teamName string) ([]string, error) {
	users, err := service.users.ListByTeam(teamName)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(users))
	for _, user := range users {
		emails = append(emails, user.Email)
	}
	return emails, nil
}
