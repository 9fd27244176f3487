package review

// Reviewer display names, drawn FemaleShare of the time from femaleNames.
var femaleNames = []string{
	"Priya K.", "Anita R.", "Deepa S.", "Riya P.", "Sneha T.", "Kavita J.", "Neha D.", "Pooja L.",
	"Simran G.", "Meera S.", "Rekha V.", "Isha M.", "Nisha A.", "Vandana P.", "Shalini R.", "Gauri K.",
	"Trupti S.", "Lata P.", "Sana K.", "Maya S.", "Neelam B.", "Veda R.", "Devika S.", "Chitra P.",
	"Bina J.", "Ankita S.", "Divya M.", "Sheetal N.", "Madhuri K.", "Zoya R.", "Shruti S.", "Nandita P.",
	"Ayesha K.", "Suman L.", "Tara M.", "Priyanka G.", "Ramanpreet K.", "Shweta P.", "Kavya S.", "Bindu M.",
	"Arpita L.", "Bhavna S.", "Sonal T.", "Priyam M.", "Roshni D.", "Anjali R.", "Minal P.", "Aarti N.",
	"Namita S.", "Sowmya R.", "Monika J.", "Rahima S.", "Shobha L.", "Radha M.", "Smita P.", "Kiran S.",
	"Preeti N.", "Jyoti K.", "Sunita R.", "Nidhi V.", "Ritika A.", "Sapna D.", "Kanika M.", "Nupur T.",
}

var maleNames = []string{
	"Rahul S.", "Amit M.", "Suresh B.", "Vikram N.", "Rajesh K.", "Manish R.", "Arjun P.", "Sanjay C.",
	"Harish N.", "Bhavesh M.", "Kamal D.", "Irfan Q.", "Abhishek R.", "Tarun V.", "Vijay P.", "Rakesh L.",
	"Siddharth G.", "Ketan R.", "Farhan A.", "Arnav M.", "Lokesh Y.", "Gopal H.", "Yogesh T.", "Sohail A.",
	"Pradeep B.", "Bharat V.", "Raman D.", "Umesh R.", "Vikash S.", "Mahesh N.", "Dinesh R.", "Nitin K.",
	"Kishore P.", "Javed A.", "Sagar K.", "Lalit S.", "Ramesh B.", "Vimal K.", "Kalyan P.", "Soham K.",
	"Rohit Y.", "Kiran H.", "Ajay M.", "Sahil N.", "Aman R.", "Arpit S.", "Nikhil T.", "Vivek P.",
}
