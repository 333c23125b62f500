package controllers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

type signupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

type loginResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
}

type updateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Signup -> POST /customer/signup
func (cc *CustomerController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.customers.Signup(c.Request.Context(), services.SignupInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.EmailAddress,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "CUSTOMER SUCCESSFULLY REGISTERED", gin.H{"id": customer.UUID})
}

// Login -> POST /customer/login dengan header "Basic base64(contact:password)"
func (cc *CustomerController) Login(c *gin.Context) {
	contact, password, ok := parseBasicAuth(c.GetHeader("Authorization"))
	if !ok {
		middlewares.AbortWithError(c, services.ErrMalformedBasicAuth)
		return
	}

	session, err := cc.customers.Authenticate(c.Request.Context(), contact, password)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	c.Header("access-token", session.AccessToken)
	utils.RespondJSON(c, http.StatusOK, "LOGGED IN SUCCESSFULLY", loginResponse{
		ID:            session.Customer.UUID,
		FirstName:     session.Customer.FirstName,
		LastName:      session.Customer.LastName,
		EmailAddress:  session.Customer.Email,
		ContactNumber: session.Customer.ContactNumber,
	})
}

// parseBasicAuth accepts only "Basic " followed by base64 of "contact:password"
// where neither part is empty.
func parseBasicAuth(header string) (contact, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	contact, password, found := strings.Cut(string(decoded), ":")
	if !found || contact == "" || password == "" {
		return "", "", false
	}
	return contact, password, true
}

// Logout -> POST /customer/logout
func (cc *CustomerController) Logout(c *gin.Context) {
	session, err := cc.customers.Logout(c.Request.Context(), middlewares.CurrentAccessToken(c))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "LOGGED OUT SUCCESSFULLY", gin.H{"id": session.Customer.UUID})
}

// UpdateCustomer -> PUT /customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.customers.UpdateProfile(c.Request.Context(), middlewares.CurrentCustomer(c), req.FirstName, req.LastName)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "CUSTOMER DETAILS UPDATED SUCCESSFULLY", gin.H{
		"id":         customer.UUID,
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
	})
}

// ChangePassword -> PUT /customer/password
func (cc *CustomerController) ChangePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.customers.ChangePassword(c.Request.Context(), middlewares.CurrentCustomer(c), req.OldPassword, req.NewPassword)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "CUSTOMER PASSWORD UPDATED SUCCESSFULLY", gin.H{"id": customer.UUID})
}
