package api

import (
	"net/http"
	"testing"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetCreate(t *testing.T) {
	a, _ := newTestAPI(t)
	user, token := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)

	w := doJSON(t, a, http.MethodPost, "/api/v1/pets", token, gin.H{
		"name":    "Rex",
		"species": "dog",
		"breed":   "labrador",
		"city":    "Valencia",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, user.ID, body["owner"])
	assert.Equal(t, model.PetAvailable, body["status"])

	// Unknown statuses are rejected
	w = doJSON(t, a, http.MethodPost, "/api/v1/pets", token, gin.H{
		"name":    "Rex",
		"species": "dog",
		"breed":   "labrador",
		"status":  "teleported",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Creating requires a session
	w = doJSON(t, a, http.MethodPost, "/api/v1/pets", "", gin.H{
		"name":    "Rex",
		"species": "dog",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPetFetchAndListings(t *testing.T) {
	a, _ := newTestAPI(t)
	user, _ := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)

	available := seedPet(t, a, user.ID, "Rex", model.PetAvailable)
	lost := seedPet(t, a, user.ID, "Milo", model.PetLost)

	w := doJSON(t, a, http.MethodGet, "/api/v1/pets/"+available.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rex", decodeBody(t, w)["name"])

	w = doJSON(t, a, http.MethodGet, "/api/v1/pets/nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/pets/adoptable", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), available.ID)
	assert.NotContains(t, w.Body.String(), lost.ID)

	w = doJSON(t, a, http.MethodGet, "/api/v1/pets/lost", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), lost.ID)
	assert.NotContains(t, w.Body.String(), available.ID)
}

func TestPetUpdateOwnership(t *testing.T) {
	a, _ := newTestAPI(t)
	owner, ownerToken := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)
	_, otherToken := seedUser(t, a, "bob", "bob@x.com", "pw1password", model.RoleUser, true)
	_, adminToken := seedUser(t, a, "root", "root@x.com", "pw1password", model.RoleAdmin, true)

	pet := seedPet(t, a, owner.ID, "Rex", model.PetAvailable)

	// Non-owners are rejected before any change happens
	w := doJSON(t, a, http.MethodPut, "/api/v1/pets/"+pet.ID, otherToken, gin.H{
		"name": "Stolen",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodPut, "/api/v1/pets/"+pet.ID, ownerToken, gin.H{
		"name":   "Rexy",
		"status": model.PetReserved,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Rexy", decodeBody(t, w)["name"])

	// Admins can edit anyone's pet
	w = doJSON(t, a, http.MethodPut, "/api/v1/pets/"+pet.ID, adminToken, gin.H{
		"status": model.PetAvailable,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodPut, "/api/v1/pets/nonexistent", ownerToken, gin.H{
		"name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPetDeleteCascadesComments(t *testing.T) {
	a, _ := newTestAPI(t)
	owner, ownerToken := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)
	_, otherToken := seedUser(t, a, "bob", "bob@x.com", "pw1password", model.RoleUser, true)

	pet := seedPet(t, a, owner.ID, "Rex", model.PetAvailable)
	require.NoError(t, a.DB.Create(&model.Comment{
		ID: "c1", PetID: pet.ID, AuthorID: owner.ID, Content: "good boy",
	}).Error)

	w := doJSON(t, a, http.MethodDelete, "/api/v1/pets/"+pet.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/pets/"+pet.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var comments int64
	require.NoError(t, a.DB.Model(model.Comment{}).Where("pet_id = ?", pet.ID).Count(&comments).Error)
	assert.Zero(t, comments)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/pets/"+pet.ID, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPetImageServe(t *testing.T) {
	a, _ := newTestAPI(t)
	user, _ := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)
	pet := seedPet(t, a, user.ID, "Rex", model.PetAvailable)

	// No image yet
	w := doJSON(t, a, http.MethodGet, "/api/v1/pets/"+pet.ID+"/image", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/pets/nonexistent/image", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	key := "pets/" + pet.ID
	require.NoError(t, a.DB.Model(model.Pet{}).Where("id = ?", pet.ID).
		Update("image_key", key).Error)

	w = doJSON(t, a, http.MethodGet, "/api/v1/pets/"+pet.ID+"/image", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), key)
}

func TestPetImageUploadDisabledWithoutStorage(t *testing.T) {
	a, _ := newTestAPI(t)
	owner, token := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)
	pet := seedPet(t, a, owner.ID, "Rex", model.PetAvailable)

	w := doJSON(t, a, http.MethodPost, "/api/v1/pets/"+pet.ID+"/image", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
