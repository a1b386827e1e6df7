package classify

import "github.com/Dr-Neiron/analyze-expenses/internal/models"

// DefaultTaxonomy returns the built-in rules used when no taxonomy file or
// table is configured.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Name: models.CategoryFood, Triggers: []string{
			"COLES", "WOOLWORTH", "ALDI", "CHEMIST", "MCDONALDS", "KITCHEN", "KAZACHOK",
			"BUTCHER", "SEAFOOD", "PIZZA", "MARROO", "EUROPA", "COSTCO WHOLESALE",
			"MOORABBIN WSALE FFM", "BLAHNIK", "FHLL GROUP", "FRESH WAREHOUSE DIRECT",
			"INTERNET TRANSFER grocery", "CHAPEL ROAD EGGS", "FOODWORKS", "MPF DANDENONG PTY LT",
			"INTERNET TRANSFER cherry", "KINGSTON FOOD HANGAR", "WOW THRIFT",
			"THAILANDER EMPORIUM MELBOURNE", "HELLOFRESH",
		}},
		{Name: models.CategoryRent, Triggers: []string{"BARRY", "DEFT"}},
		{Name: models.CategoryInternet, Triggers: []string{"SPINTEL"}},
		{Name: models.CategoryHomeBills, Triggers: []string{"AGL", "WATER"}},
		{Name: models.CategoryPhone, Triggers: []string{"VODAFONE", "Kogan Mobile"}},
		{Name: models.CategoryFurniture, Triggers: []string{
			"IKEA", "KMART", "BIG W", "ALIEXPRESS", "TARGET", "SHOEMAKERS", "PAULS WAREHOUSE",
			"SAVERS", "REJECT SHOP", "BEST AND LESS", "KATHMANDU", "MERRELL", "TK MAXX",
			"iShoes Pop-Up Kangaroo", "PHOENIX LEISURE GROU INGLEBURN",
		}},
		{Name: models.CategoryElectronics, Triggers: []string{
			"JB HI FI", "GOODGUYS", "OFFICEWORKS", "HARVEY NORMAN", "TOBYDEALS", "JB HI-FI",
		}},
		{Name: models.CategoryTransport, Triggers: []string{"TRANSPORT", "UBER", "MYKI"}},
		{Name: models.CategorySalary, Triggers: []string{"SALARY", "ATO", "Blackmagic Design"}},
		{Name: models.CategoryMedicine, Triggers: []string{
			"NIB", "AVERGUN", "CLINICAL LABS", "RADIOLOGY", "MASSAGE", "PHARMACY", "HEALTH",
		}},
		{Name: models.CategoryFun, Triggers: []string{
			"LUNA PARK", "DON TATNELL", "ZOO", "HOBBIES", "BCF", "GAINFUL", "MYUNA", "STUDIO Z",
			"PlaystationNetwork",
		}},
		{Name: models.CategoryCash, Triggers: []string{"ANZ ATM", "ATM DEBIT", "NABATM"}},
		{Name: models.CategoryTools, Triggers: []string{"BIKES", "BUNNINGS"}},
		{Name: models.CategorySavings, Triggers: []string{"ANZ M-BANKING FUNDS TFER TRANSFER"}},
		{Name: models.CategoryIgnore, Triggers: []string{"ACCOUNT SERVICING FEE", "DEBIT INTEREST CHARGED"}},
		{Name: models.CategoryCar, Triggers: []string{
			"FUEL", "LINKT", "CITYLINK", "ROADS", "17126", "TOYOTA", "AUTO", "CITY OF GREATER DAND",
			"PARKIN", "ROOF RACK", "BINGLE", "VICROADS", "CIRCUM WASH", "STONNINGTON CITY COUNC",
		}},
		{Name: models.CategoryGovernment, Triggers: []string{"AFFAIRS", "BUPA MEDICAL VISA", "DEPARTMENT OF HOME"}},
		{Name: models.CategoryTravel, Triggers: []string{
			"BOOKING.COM", "AIRBNB", "QATAR", "camping", "PARKS VIC", "BIG4 HAWTHORN",
		}},
	}
}
