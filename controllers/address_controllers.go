package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type AddressController struct {
	addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{addresses: addresses}
}

type saveAddressRequest struct {
	FlatBuildingName string `json:"flat_building_name"`
	Locality         string `json:"locality"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	StateUUID        string `json:"state_uuid"`
}

// SaveAddress -> POST /address
func (ac *AddressController) SaveAddress(c *gin.Context) {
	var req saveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	address, err := ac.addresses.SaveAddress(c.Request.Context(), middlewares.CurrentCustomer(c), services.AddressInput{
		FlatBuildingName: req.FlatBuildingName,
		Locality:         req.Locality,
		City:             req.City,
		Pincode:          req.Pincode,
		StateUUID:        req.StateUUID,
	})
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "ADDRESS SUCCESSFULLY REGISTERED", gin.H{"id": address.UUID})
}

// GetCustomerAddresses -> GET /address/customer
func (ac *AddressController) GetCustomerAddresses(c *gin.Context) {
	addresses, err := ac.addresses.ListAddresses(c.Request.Context(), middlewares.CurrentCustomer(c))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of addresses", gin.H{"addresses": addresses})
}

// DeleteAddress -> DELETE /address/:address_id
func (ac *AddressController) DeleteAddress(c *gin.Context) {
	ctx := c.Request.Context()

	address, err := ac.addresses.GetAddressByUUID(ctx, c.Param("address_id"), middlewares.CurrentCustomer(c))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	deleted, err := ac.addresses.DeleteAddress(ctx, address)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "ADDRESS DELETED SUCCESSFULLY", gin.H{"id": deleted.UUID})
}

// GetAllStates -> GET /states
func (ac *AddressController) GetAllStates(c *gin.Context) {
	states, err := ac.addresses.ListStates(c.Request.Context())
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of states", gin.H{"states": states})
}
