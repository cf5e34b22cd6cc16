package auth

import (
	"context"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/token"
)

// ===============================
// Roles
// ===============================

// Role is a closed enumeration; the admin, doctor and patient directories
// are disjoint, so exactly one lookup applies per role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Identity is the resolved caller, used downstream for ownership checks.
type Identity struct {
	ID      uint
	Subject string
	Role    Role
}

// Directory exposes the three read-mostly lookups the gate needs. Admins
// authenticate by username, doctors and patients by email.
type Directory interface {
	FindAdminIDByUsername(ctx context.Context, username string) (uint, error)
	FindDoctorIDByEmail(ctx context.Context, email string) (uint, error)
	FindPatientIDByEmail(ctx context.Context, email string) (uint, error)
}

// ===============================
// Gate
// ===============================

type Gate struct {
	codec *token.Codec
	dir   Directory
}

func NewGate(codec *token.Codec, dir Directory) *Gate {
	return &Gate{codec: codec, dir: dir}
}

// Authorize verifies the bearer token, then confirms the subject still
// exists in the directory matching requiredRole. Token failures are
// Unauthenticated; a valid token whose subject has no record under the
// required role is Unauthorized.
func (g *Gate) Authorize(ctx context.Context, tokenString string, requiredRole Role) (Identity, error) {
	subject, err := g.codec.VerifySubject(tokenString)
	if err != nil {
		return Identity{}, err
	}

	var id uint
	switch requiredRole {
	case RoleAdmin:
		id, err = g.dir.FindAdminIDByUsername(ctx, subject)
	case RoleDoctor:
		id, err = g.dir.FindDoctorIDByEmail(ctx, subject)
	case RolePatient:
		id, err = g.dir.FindPatientIDByEmail(ctx, subject)
	default:
		return Identity{}, scheduling.Internal("unknown_role")
	}

	if err != nil {
		if scheduling.IsKind(err, scheduling.KindNotFound) {
			return Identity{}, scheduling.Unauthorized("role_not_permitted")
		}
		return Identity{}, err
	}

	return Identity{ID: id, Subject: subject, Role: requiredRole}, nil
}
