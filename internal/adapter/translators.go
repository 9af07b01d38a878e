package adapter

import "github.com/MKhiriev/go-vault-wrench/models"

// Foreign JSON shapes of the server API and their translation into the
// package models. The server speaks CakePHP-style nested records
// (profile, gpgkey, groups_users); nothing above this package sees them.

type resourceDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URI         string `json:"uri"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Tags        []struct {
		Slug string `json:"slug"`
	} `json:"tags"`
}

func (d resourceDTO) toModel() models.Resource {
	resource := models.Resource{
		ID:          d.ID,
		Name:        d.Name,
		URI:         d.URI,
		Username:    d.Username,
		Description: d.Description,
	}
	for _, tag := range d.Tags {
		resource.Tags = append(resource.Tags, tag.Slug)
	}
	return resource
}

// newResourceDTO is the creation payload: metadata plus the first encrypted
// secret, implicitly addressed to the current user.
type newResourceDTO struct {
	Name        string      `json:"name"`
	Username    string      `json:"username,omitempty"`
	URI         string      `json:"uri,omitempty"`
	Description string      `json:"description,omitempty"`
	Secrets     []secretDTO `json:"secrets"`
}

type secretDTO struct {
	ResourceID string                  `json:"resource_id,omitempty"`
	UserID     string                  `json:"user_id,omitempty"`
	Data       models.SecretCiphertext `json:"data"`
}

func (d secretDTO) toModel() models.Secret {
	return models.Secret{ResourceID: d.ResourceID, UserID: d.UserID, Data: d.Data}
}

type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
	Profile  struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"profile"`
	GpgKey *struct {
		ID          string `json:"id"`
		Fingerprint string `json:"fingerprint"`
		ArmoredKey  string `json:"armored_key"`
	} `json:"gpgkey"`
	GroupsUsers []struct {
		GroupID string `json:"group_id"`
	} `json:"groups_users"`
}

func (d userDTO) toModel() models.User {
	user := models.User{
		ID:        d.ID,
		Username:  d.Username,
		FirstName: d.Profile.FirstName,
		LastName:  d.Profile.LastName,
	}
	if d.GpgKey != nil && d.GpgKey.ArmoredKey != "" {
		user.GpgKey = &models.GpgKey{
			ID:          d.GpgKey.ID,
			Fingerprint: d.GpgKey.Fingerprint,
			ArmoredKey:  d.GpgKey.ArmoredKey,
		}
	}
	for _, membership := range d.GroupsUsers {
		user.GroupIDs = append(user.GroupIDs, membership.GroupID)
	}
	return user
}

type groupDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GroupsUsers []struct {
		UserID string `json:"user_id"`
	} `json:"groups_users"`
}

func (d groupDTO) toModel() models.Group {
	group := models.Group{ID: d.ID, Name: d.Name}
	for _, membership := range d.GroupsUsers {
		group.MemberIDs = append(group.MemberIDs, membership.UserID)
	}
	return group
}

// shareRequestDTO is the wire body of the share endpoint.
type shareRequestDTO struct {
	Secrets     []secretDTO          `json:"secrets"`
	Permissions []permissionWriteDTO `json:"permissions"`
}

// permissionWriteDTO is the outgoing permission record of a share call. The
// server expects the CakePHP ACO/ARO naming and an is_new marker on records
// without a server-side id.
type permissionWriteDTO struct {
	IsNew         bool   `json:"is_new"`
	ID            string `json:"id,omitempty"`
	ACO           string `json:"aco"`
	ACOForeignKey string `json:"aco_foreign_key"`
	ARO           string `json:"aro"`
	AROForeignKey string `json:"aro_foreign_key"`
	Type          int    `json:"type"`
}

func newShareRequestDTO(req models.ShareRequest) shareRequestDTO {
	dto := shareRequestDTO{
		Secrets:     make([]secretDTO, 0, len(req.Secrets)),
		Permissions: make([]permissionWriteDTO, 0, len(req.Permissions)),
	}
	for _, secret := range req.Secrets {
		dto.Secrets = append(dto.Secrets, secretDTO{
			ResourceID: secret.ResourceID,
			UserID:     secret.UserID,
			Data:       secret.Data,
		})
	}
	for _, permission := range req.Permissions {
		aro := "User"
		if permission.Recipient.IsGroup() {
			aro = "Group"
		}
		dto.Permissions = append(dto.Permissions, permissionWriteDTO{
			IsNew:         permission.ID == "",
			ID:            permission.ID,
			ACO:           "Resource",
			ACOForeignKey: permission.ResourceID,
			ARO:           aro,
			AROForeignKey: permission.Recipient.ID(),
			Type:          int(permission.Type),
		})
	}
	return dto
}

type permissionDTO struct {
	ID            string `json:"id"`
	ACO           string `json:"aco"`
	ACOForeignKey string `json:"aco_foreign_key"`
	ARO           string `json:"aro"`
	AROForeignKey string `json:"aro_foreign_key"`
	Type          int    `json:"type"`
}

func (d permissionDTO) toModel() models.Permission {
	permission := models.Permission{
		ID:         d.ID,
		ResourceID: d.ACOForeignKey,
		Type:       models.PermissionType(d.Type),
	}
	switch d.ARO {
	case "Group":
		permission.Recipient = models.Recipient{Group: &models.Group{ID: d.AROForeignKey}}
	default:
		permission.Recipient = models.Recipient{User: &models.User{ID: d.AROForeignKey}}
	}
	return permission
}
