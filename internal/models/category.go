package models

// Category represents spending categories for transactions.
type Category string

// Categories of the built-in taxonomy, in precedence order.
const (
	CategoryFood        Category = "Food and chemistry"
	CategoryRent        Category = "Rent"
	CategoryInternet    Category = "Internet"
	CategoryHomeBills   Category = "Home Bills"
	CategoryPhone       Category = "Phone"
	CategoryFurniture   Category = "Furniture and clothes"
	CategoryElectronics Category = "Electronics"
	CategoryTransport   Category = "Transport"
	CategorySalary      Category = "Salary"
	CategoryMedicine    Category = "Medicine"
	CategoryFun         Category = "Fun"
	CategoryCash        Category = "Cash"
	CategoryTools       Category = "Tools"
	CategorySavings     Category = "Savings"
	CategoryIgnore      Category = "Ignore"
	CategoryCar         Category = "Car"
	CategoryGovernment  Category = "Visas and other Gov"
	CategoryTravel      Category = "Travel and tickets"

	// CategoryOther is assigned when no rule matches. It is reserved and
	// cannot be declared by a taxonomy.
	CategoryOther Category = "Other"
)
