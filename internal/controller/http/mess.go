package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) messBalance(c *gin.Context) {
	identity := identityFrom(c)

	balance, err := a.mess.Balance(c.Request.Context(), identity.ID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (a *API) messTransactions(c *gin.Context) {
	identity := identityFrom(c)

	txns, err := a.mess.Transactions(c.Request.Context(), identity.ID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

type createMessTransactionRequest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (a *API) createMessTransaction(c *gin.Context) {
	identity := identityFrom(c)

	var req createMessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	txn, err := a.mess.AddTransaction(c.Request.Context(), identity.ID, req.Amount, req.Description, req.Date, req.Time)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}
