package services

import (
	"context"

	"github.com/yashrajoria/remarket/models"
)

// PolicyService serves the static buyer/seller guide and policy documents.
type PolicyService interface {
	Get(ctx context.Context, policyType string) (*models.Policy, *ServiceError)
	Types(ctx context.Context) []string
}

type policyServiceImpl struct {
	policies map[string]models.Policy
}

func NewPolicyService() PolicyService {
	return &policyServiceImpl{policies: policyContent()}
}

func (s *policyServiceImpl) Get(_ context.Context, policyType string) (*models.Policy, *ServiceError) {
	policy, ok := s.policies[policyType]
	if !ok {
		return nil, &ServiceError{StatusCode: 404, Message: "Policy not found"}
	}
	return &policy, nil
}

func (s *policyServiceImpl) Types(_ context.Context) []string {
	types := []string{
		"howToBuy", "safetyTips", "paymentOptions", "returnPolicy",
		"listItem", "sellingTips", "pricingGuide", "sellerProtection",
		"communityGuidelines", "privacyPolicy",
	}
	return types
}

func policyContent() map[string]models.Policy {
	return map[string]models.Policy{
		"howToBuy": {
			Type:  "howToBuy",
			Title: "How to Buy",
			Sections: []string{
				"Browse listings or search by title, condition, or location.",
				"Add items to your cart and review the price breakdown before checkout.",
				"Complete the 3-step checkout: delivery details, payment method, review.",
				"Track your order from your dashboard until it arrives.",
			},
		},
		"safetyTips": {
			Type:  "safetyTips",
			Title: "Safety Tips",
			Sections: []string{
				"Meet sellers in public places for local pickups.",
				"Inspect items before completing a purchase.",
				"Never share payment credentials outside the platform.",
				"Report suspicious listings through the support center.",
			},
		},
		"paymentOptions": {
			Type:  "paymentOptions",
			Title: "Payment Options",
			Sections: []string{
				"UPI: Google Pay, PhonePe, Paytm.",
				"Credit and debit cards: Visa, Mastercard, RuPay.",
				"Digital wallets: Paytm, Amazon Pay, MobiKwik.",
				"Net banking with all major banks.",
			},
		},
		"returnPolicy": {
			Type:  "returnPolicy",
			Title: "Return Policy",
			Sections: []string{
				"Returns are accepted within 7 days for items not as described.",
				"Contact the seller first; unresolved disputes go to support.",
				"Refunds are issued to the original payment method.",
			},
		},
		"listItem": {
			Type:  "listItem",
			Title: "List an Item",
			Sections: []string{
				"Create a seller account, then use List an Item from the header.",
				"Add a clear title, honest condition, price, and location.",
				"New listings carry a highlight badge for their first moments live.",
			},
		},
		"sellingTips": {
			Type:  "sellingTips",
			Title: "Selling Tips",
			Sections: []string{
				"Use natural light for photos and show any wear honestly.",
				"Respond to buyer messages quickly to keep your response rate up.",
				"Competitive pricing against the original price moves items faster.",
			},
		},
		"pricingGuide": {
			Type:  "pricingGuide",
			Title: "Pricing Guide",
			Sections: []string{
				"Price 30-60% below retail depending on age and condition.",
				"Set the original price so buyers see the discount.",
			},
		},
		"sellerProtection": {
			Type:  "sellerProtection",
			Title: "Seller Protection",
			Sections: []string{
				"Payments are held until the buyer confirms receipt.",
				"Sellers are covered against fraudulent chargebacks on platform sales.",
			},
		},
		"communityGuidelines": {
			Type:  "communityGuidelines",
			Title: "Community Guidelines",
			Sections: []string{
				"Be honest in listings and respectful in messages.",
				"Prohibited items: counterfeits, weapons, recalled goods.",
				"Repeated violations lead to account removal.",
			},
		},
		"privacyPolicy": {
			Type:  "privacyPolicy",
			Title: "Privacy Policy",
			Sections: []string{
				"This demo keeps all data in memory; nothing is persisted or shared.",
				"Session data is discarded when the service stops.",
			},
		},
	}
}
