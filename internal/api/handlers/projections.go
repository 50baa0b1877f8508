package handlers

import (
	"time"

	"auction-engine/internal/domain"
)

// Amounts cross the wire as fixed-point strings with two fractional digits.

type ItemResponse struct {
	ItemID          string     `json:"itemId"`
	SellerID        string     `json:"sellerId"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	StartingPrice   string     `json:"startingPrice"`
	CurrentPrice    string     `json:"currentPrice"`
	MinimumPrice    *string    `json:"minimumPrice,omitempty"`
	AuctionType     string     `json:"auctionType"`
	Status          string     `json:"status"`
	CurrentWinnerID *string    `json:"currentWinnerId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaymentTime     *time.Time `json:"paymentTime,omitempty"`
}

type BidResponse struct {
	BidID    string    `json:"bidId"`
	ItemID   string    `json:"itemId"`
	BidderID string    `json:"bidderId"`
	Amount   string    `json:"amount"`
	BidTime  time.Time `json:"bidTime"`
}

type UserView struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ReceiptResponse struct {
	ItemID        string     `json:"itemId"`
	Title         string     `json:"title"`
	AuctionType   string     `json:"auctionType"`
	Status        string     `json:"status"`
	FinalPrice    string     `json:"finalPrice"`
	CreatedAt     time.Time  `json:"createdAt"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Seller        *UserView  `json:"seller"`
	Buyer         *UserView  `json:"buyer"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentTime   *time.Time `json:"paymentTime,omitempty"`
}

func toItemResponse(item *domain.Item) ItemResponse {
	resp := ItemResponse{
		ItemID:          item.ID,
		SellerID:        item.SellerID,
		Title:           item.Title,
		Description:     item.Description,
		StartingPrice:   item.StartingPrice.StringFixed(2),
		CurrentPrice:    item.CurrentPrice.StringFixed(2),
		AuctionType:     item.AuctionType.String(),
		Status:          item.Status.String(),
		CurrentWinnerID: item.CurrentWinnerID,
		CreatedAt:       item.CreatedAt,
		EndTime:         item.EndTime,
		PaymentStatus:   item.PaymentStatus.String(),
		PaymentTime:     item.PaymentTime,
	}
	if item.MinimumPrice != nil {
		m := item.MinimumPrice.StringFixed(2)
		resp.MinimumPrice = &m
	}
	return resp
}

func toItemResponses(items []*domain.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses
}

func toBidResponse(bid *domain.Bid) BidResponse {
	return BidResponse{
		BidID:    bid.ID,
		ItemID:   bid.ItemID,
		BidderID: bid.BidderID,
		Amount:   bid.Amount.StringFixed(2),
		BidTime:  bid.BidTime,
	}
}

func toUserView(user *domain.User) *UserView {
	if user == nil {
		return nil
	}
	return &UserView{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func toReceiptResponse(receipt *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ItemID:        receipt.ItemID,
		Title:         receipt.Title,
		AuctionType:   receipt.AuctionType.String(),
		Status:        receipt.Status.String(),
		FinalPrice:    receipt.FinalPrice.StringFixed(2),
		CreatedAt:     receipt.CreatedAt,
		EndTime:       receipt.EndTime,
		Seller:        toUserView(receipt.Seller),
		Buyer:         toUserView(receipt.Buyer),
		PaymentStatus: receipt.PaymentStatus.String(),
		PaymentTime:   receipt.PaymentTime,
	}
}
