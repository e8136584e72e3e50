package entity

// OfferState mirrors Steam's trade offer state enum.
type OfferState int

const (
	// InvalidOfferState - Invalid
	InvalidOfferState OfferState = 1
	// ActiveOfferState - This trade offer has been sent, neither party has acted on it yet.
	ActiveOfferState OfferState = 2
	// AcceptedOfferState - The trade offer was accepted by the recipient and items were exchanged.
	AcceptedOfferState OfferState = 3
	// CounteredOfferState - The recipient made a counter-offer
	CounteredOfferState OfferState = 4
	// ExpiredOfferState - The trade offer was not accepted before the expiration date
	ExpiredOfferState OfferState = 5
	// CanceledOfferState - The sender cancelled the offer
	CanceledOfferState OfferState = 6
	// DeclinedOfferState - The recipient declined the offer
	DeclinedOfferState OfferState = 7
	// InvalidItemsOfferState - Some of the items in the offer are no longer available
	InvalidItemsOfferState OfferState = 8
	// CreatedNeedsConfirmationOfferState - The offer hasn't been sent yet and is awaiting
	// email/mobile confirmation. The offer is only visible to the sender.
	CreatedNeedsConfirmationOfferState OfferState = 9
	// CanceledBySecondFactorOfferState - Either party canceled the offer via email/mobile.
	CanceledBySecondFactorOfferState OfferState = 10
	// InEscrowOfferState - The trade has been placed on hold.
	InEscrowOfferState OfferState = 11
)

// TradeOffers is one poll's worth of offers, split the way
// IEconService/GetTradeOffers returns them.
type TradeOffers struct {
	Received []TradeOffer
	Sent     []TradeOffer
}

// TradeOffer is one proposed or resolved exchange as returned by
// IEconService/GetTradeOffers.
type TradeOffer struct {
	TradeOfferID   string
	State          OfferState
	Message        string
	TimeCreated    int64
	TimeUpdated    int64
	OtherAccountID int64
}
