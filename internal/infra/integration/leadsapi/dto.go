package leadsapi

import (
	"strings"

	"github.com/pipetrack/pipetrack/internal/entity"
)

type AssignRequest struct {
	LeadIDs []string `json:"leadIds"`
	BdaID   string   `json:"bdaId"`
	BdaName string   `json:"bdaName"`
}

// UserDTO tolerates the two id spellings the upstream has shipped.
type UserDTO struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

func (d UserDTO) ToEntity() entity.User {
	id := d.ID
	if id == "" {
		id = d.UserID
	}
	role := entity.RoleBDA
	if strings.EqualFold(d.Role, string(entity.RoleAdmin)) {
		role = entity.RoleAdmin
	}
	return entity.User{ID: id, Name: d.Name, Email: d.Email, Role: role}
}
