/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel/invoke"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/fab"
	"github.com/pkg/errors"
)

// sendTxHandler sends the endorsed transaction to the orderer and returns
// without waiting for the commit event
type sendTxHandler struct {
	next invoke.Handler
}

// Handle sends the transaction built from the endorsement responses
func (h *sendTxHandler) Handle(requestContext *invoke.RequestContext, clientContext *invoke.ClientContext) {
	tx, err := clientContext.Transactor.CreateTransaction(fab.TransactionRequest{
		Proposal:          requestContext.Response.Proposal,
		ProposalResponses: requestContext.Response.Responses,
	})
	if err != nil {
		requestContext.Error = errors.WithMessage(err, "CreateTransaction failed")
		return
	}

	if _, err := clientContext.Transactor.SendTransaction(tx); err != nil {
		requestContext.Error = errors.WithMessage(err, "SendTransaction failed")
		return
	}

	if h.next != nil {
		h.next.Handle(requestContext, clientContext)
	}
}

// newSubmitWithoutCommitHandler returns the execute chain of the SDK with the
// commit step replaced by sendTxHandler
func newSubmitWithoutCommitHandler() invoke.Handler {
	return invoke.NewSelectAndEndorseHandler(
		invoke.NewEndorsementValidationHandler(
			invoke.NewSignatureValidationHandler(&sendTxHandler{}),
		),
	)
}
