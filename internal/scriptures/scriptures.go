// Package scriptures holds the static mastery dataset, partitioned by canon.
// The data is compiled in; there is no load step and no mutation.
package scriptures

import "github.com/scripturemastery/server/internal/model"

func ref(text, book string, chapter int, verse string, canon model.Canon) model.Scripture {
	return model.Scripture{
		Text:      text,
		Reference: model.Reference{Book: book, Chapter: chapter, Verse: verse},
		Canon:     canon,
	}
}

var oldTestament = []model.Scripture{
	ref("This is my work and my glory, to bring to pass the immortality and eternal life of man", "Moses", 1, "39", model.CanonOldTestament),
	ref("And the Lord called his people Zion, because they were of one heart and one mind", "Moses", 7, "18", model.CanonOldTestament),
	ref("These I will make my rulers; for he stood among those that were spirits", "Abraham", 3, "22-23", model.CanonOldTestament),
	ref("And God said, Let us make man in our image, after our likeness", "Genesis", 1, "26-27", model.CanonOldTestament),
	ref("How then can I do this great wickedness, and sin against God?", "Genesis", 39, "9", model.CanonOldTestament),
	ref("Thou shalt have no other gods before me", "Exodus", 20, "3-17", model.CanonOldTestament),
	ref("And the Lord spake unto Moses face to face, as a man speaketh unto his friend", "Exodus", 33, "11", model.CanonOldTestament),
	ref("Thou shalt love thy neighbour as thyself", "Leviticus", 19, "18", model.CanonOldTestament),
	ref("Neither shalt thou make marriages with them", "Deuteronomy", 7, "3-4", model.CanonOldTestament),
	ref("This book of the law shall not depart out of thy mouth", "Joshua", 1, "8", model.CanonOldTestament),
	ref("Choose you this day whom ye will serve; but as for me and my house, we will serve the Lord", "Joshua", 24, "15", model.CanonOldTestament),
	ref("For man looketh on the outward appearance, but the Lord looketh on the heart", "1 Samuel", 16, "7", model.CanonOldTestament),
	ref("For I know that my redeemer liveth, and that he shall stand at the latter day upon the earth", "Job", 19, "25-26", model.CanonOldTestament),
	ref("Who shall ascend into the hill of the Lord? He that hath clean hands, and a pure heart", "Psalm", 24, "3-4", model.CanonOldTestament),
	ref("Trust in the Lord with all thine heart; and lean not unto thine own understanding", "Proverbs", 3, "5-6", model.CanonOldTestament),
	ref("Though your sins be as scarlet, they shall be as white as snow", "Isaiah", 1, "18", model.CanonOldTestament),
	ref("A marvellous work and a wonder", "Isaiah", 29, "13-14", model.CanonOldTestament),
	ref("He is despised and rejected of men; a man of sorrows, and acquainted with grief", "Isaiah", 53, "3-5", model.CanonOldTestament),
	ref("For my thoughts are not your thoughts, neither are your ways my ways, saith the Lord", "Isaiah", 55, "8-9", model.CanonOldTestament),
	ref("Behold, I will send for many fishers, saith the Lord, and they shall fish them", "Jeremiah", 16, "16", model.CanonOldTestament),
	ref("Take thee one stick, and write upon it, For Judah; then take another stick", "Ezekiel", 37, "15-17", model.CanonOldTestament),
	ref("The God of heaven set up a kingdom, which shall never be destroyed", "Daniel", 2, "44-45", model.CanonOldTestament),
	ref("Surely the Lord God will do nothing, but he revealeth his secret unto his servants the prophets", "Amos", 3, "7", model.CanonOldTestament),
	ref("Will a man rob God? Yet ye have robbed me. But ye say, Wherein have we robbed thee? In tithes and offerings", "Malachi", 3, "8-10", model.CanonOldTestament),
	ref("Behold, I will send you Elijah the prophet before the coming of the great and dreadful day of the Lord", "Malachi", 4, "5-6", model.CanonOldTestament),
}

var newTestament = []model.Scripture{
	ref("Ye are the light of the world. A city that is set on an hill cannot be hid", "Matthew", 5, "14-16", model.CanonNewTestament),
	ref("No man can serve two masters", "Matthew", 6, "24", model.CanonNewTestament),
	ref("Thou art the Christ, the Son of the living God", "Matthew", 16, "15-19", model.CanonNewTestament),
	ref("Inasmuch as ye have done it unto one of the least of these my brethren, ye have done it unto me", "Matthew", 25, "40", model.CanonNewTestament),
	ref("Behold my hands and my feet, that it is I myself: handle me, and see", "Luke", 24, "36-39", model.CanonNewTestament),
	ref("Except a man be born of water and of the Spirit, he cannot enter into the kingdom of God", "John", 3, "5", model.CanonNewTestament),
	ref("If any man will do his will, he shall know of the doctrine", "John", 7, "17", model.CanonNewTestament),
	ref("And other sheep I have, which are not of this fold", "John", 10, "16", model.CanonNewTestament),
	ref("If ye love me, keep my commandments", "John", 14, "15", model.CanonNewTestament),
	ref("And this is life eternal, that they might know thee the only true God, and Jesus Christ", "John", 17, "3", model.CanonNewTestament),
	ref("I see the heavens opened, and the Son of man standing on the right hand of God", "Acts", 7, "55-56", model.CanonNewTestament),
	ref("For I am not ashamed of the gospel of Christ: for it is the power of God unto salvation", "Romans", 1, "16", model.CanonNewTestament),
	ref("God is faithful, who will not suffer you to be tempted above that ye are able", "1 Corinthians", 10, "13", model.CanonNewTestament),
	ref("For as in Adam all die, even so in Christ shall all be made alive", "1 Corinthians", 15, "20-22", model.CanonNewTestament),
	ref("Else what shall they do which are baptized for the dead?", "1 Corinthians", 15, "29", model.CanonNewTestament),
	ref("There are also celestial bodies, and bodies terrestrial", "1 Corinthians", 15, "40-42", model.CanonNewTestament),
	ref("And he gave some, apostles; and some, prophets; and some, evangelists", "Ephesians", 4, "11-14", model.CanonNewTestament),
	ref("That day shall not come, except there come a falling away first", "2 Thessalonians", 2, "1-3", model.CanonNewTestament),
	ref("In the last days perilous times shall come", "2 Timothy", 3, "1-5", model.CanonNewTestament),
	ref("All scripture is given by inspiration of God, and is profitable for doctrine", "2 Timothy", 3, "16-17", model.CanonNewTestament),
	ref("No man taketh this honour unto himself, but he that is called of God, as was Aaron", "Hebrews", 5, "4", model.CanonNewTestament),
	ref("If any of you lack wisdom, let him ask of God, that giveth to all men liberally", "James", 1, "5-6", model.CanonNewTestament),
	ref("Faith, if it hath not works, is dead, being alone", "James", 2, "17-18", model.CanonNewTestament),
	ref("I saw another angel fly in the midst of heaven, having the everlasting gospel", "Revelation", 14, "6-7", model.CanonNewTestament),
	ref("And the dead were judged out of those things which were written in the books", "Revelation", 20, "12-13", model.CanonNewTestament),
}

var bookOfMormon = []model.Scripture{
	ref("I will go and do the things which the Lord hath commanded", "1 Nephi", 3, "7", model.CanonBookOfMormon),
	ref("I did liken all scriptures unto us, that it might be for our profit and learning", "1 Nephi", 19, "23", model.CanonBookOfMormon),
	ref("Adam fell that men might be; and men are, that they might have joy", "2 Nephi", 2, "25", model.CanonBookOfMormon),
	ref("They are free to choose liberty and eternal life... or captivity and death", "2 Nephi", 2, "27", model.CanonBookOfMormon),
	ref("When they are learned they think they are wise", "2 Nephi", 9, "28-29", model.CanonBookOfMormon),
	ref("All is well in Zion; yea, Zion prospereth, all is well", "2 Nephi", 28, "7-9", model.CanonBookOfMormon),
	ref("Feast upon the words of Christ; for behold, the words of Christ will tell you all things", "2 Nephi", 32, "3", model.CanonBookOfMormon),
	ref("Ye must pray always, and not faint", "2 Nephi", 32, "8-9", model.CanonBookOfMormon),
	ref("Before ye seek for riches, seek ye for the kingdom of God", "Jacob", 2, "18-19", model.CanonBookOfMormon),
	ref("When ye are in the service of your fellow beings ye are only in the service of your God", "Mosiah", 2, "17", model.CanonBookOfMormon),
	ref("The natural man is an enemy to God, and has been from the fall of Adam", "Mosiah", 3, "19", model.CanonBookOfMormon),
	ref("If ye do not watch yourselves, and your thoughts, and your words, and your deeds... ye must perish", "Mosiah", 4, "30", model.CanonBookOfMormon),
	ref("Faith is not to have a perfect knowledge of things", "Alma", 32, "21", model.CanonBookOfMormon),
	ref("This life is the time for men to prepare to meet God", "Alma", 34, "32-34", model.CanonBookOfMormon),
	ref("By small and simple things are great things brought to pass", "Alma", 37, "6-7", model.CanonBookOfMormon),
	ref("Learn wisdom in thy youth; yea, learn in thy youth to keep the commandments of God", "Alma", 37, "35", model.CanonBookOfMormon),
	ref("Wickedness never was happiness", "Alma", 41, "10", model.CanonBookOfMormon),
	ref("It is upon the rock of our Redeemer, who is Christ, the Son of God, that ye must build your foundation", "Helaman", 5, "12", model.CanonBookOfMormon),
	ref("He that hath the spirit of contention is not of me, but is of the devil", "3 Nephi", 11, "29", model.CanonBookOfMormon),
	ref("What manner of men ought ye to be? Verily I say unto you, even as I am", "3 Nephi", 27, "27", model.CanonBookOfMormon),
	ref("Ye receive no witness until after the trial of your faith", "Ether", 12, "6", model.CanonBookOfMormon),
	ref("I give unto men weakness that they may be humble", "Ether", 12, "27", model.CanonBookOfMormon),
	ref("All things which are good cometh of God", "Moroni", 7, "16-17", model.CanonBookOfMormon),
	ref("Charity is the pure love of Christ, and it endureth forever", "Moroni", 7, "45", model.CanonBookOfMormon),
	ref("Ask God, the Eternal Father, in the name of Christ, if these things are not true", "Moroni", 10, "4-5", model.CanonBookOfMormon),
}

var doctrineAndCovenants = []model.Scripture{
	ref("Whether by mine own voice or by the voice of my servants, it is the same", "D&C", 1, "37-38", model.CanonDoctrineAndCovenants),
	ref("I will tell you in your mind and in your heart, by the Holy Ghost", "D&C", 8, "2-3", model.CanonDoctrineAndCovenants),
	ref("Pray always, that you may come off conqueror", "D&C", 10, "5", model.CanonDoctrineAndCovenants),
	ref("Eternal life, which gift is the greatest of all the gifts of God", "D&C", 14, "7", model.CanonDoctrineAndCovenants),
	ref("Remember the worth of souls is great in the sight of God", "D&C", 18, "10,15-16", model.CanonDoctrineAndCovenants),
	ref("Which suffering caused myself, even God, the greatest of all, to tremble because of pain", "D&C", 19, "16-19", model.CanonDoctrineAndCovenants),
	ref("The song of the righteous is a prayer unto me", "D&C", 25, "12", model.CanonDoctrineAndCovenants),
	ref("Men should be anxiously engaged in a good cause", "D&C", 58, "26-27", model.CanonDoctrineAndCovenants),
	ref("By this ye may know if a man repenteth of his sins—behold, he will confess them and forsake them", "D&C", 58, "42-43", model.CanonDoctrineAndCovenants),
	ref("Thou shalt offer a sacrifice unto the Lord thy God in righteousness", "D&C", 59, "9-10", model.CanonDoctrineAndCovenants),
	ref("Of you it is required to forgive all men", "D&C", 64, "9-11", model.CanonDoctrineAndCovenants),
	ref("This is the testimony, last of all, which we give of him: That he lives!", "D&C", 76, "22-24", model.CanonDoctrineAndCovenants),
	ref("Unto whom much is given much is required", "D&C", 82, "3", model.CanonDoctrineAndCovenants),
	ref("I, the Lord, am bound when ye do what I say; but when ye do not what I say, ye have no promise", "D&C", 82, "10", model.CanonDoctrineAndCovenants),
	ref("All that my Father hath shall be given unto him", "D&C", 84, "33-39", model.CanonDoctrineAndCovenants),
	ref("See that ye love one another; cease to be covetous; learn to impart one to another", "D&C", 88, "123-124", model.CanonDoctrineAndCovenants),
	ref("All saints who remember to keep and do these sayings... shall receive health in their navel", "D&C", 89, "18-21", model.CanonDoctrineAndCovenants),
	ref("The rights of the priesthood are inseparably connected with the powers of heaven", "D&C", 121, "34-36", model.CanonDoctrineAndCovenants),
	ref("Whatever principle of intelligence we attain unto in this life, it will rise with us in the resurrection", "D&C", 130, "18-19", model.CanonDoctrineAndCovenants),
	ref("There is a law, irrevocably decreed in heaven before the foundations of this world", "D&C", 130, "20-21", model.CanonDoctrineAndCovenants),
	ref("The Father has a body of flesh and bones as tangible as man's; the Son also", "D&C", 130, "22-23", model.CanonDoctrineAndCovenants),
	ref("In the celestial glory there are three heavens or degrees", "D&C", 131, "1-4", model.CanonDoctrineAndCovenants),
	ref("All who have died without a knowledge of this gospel, who would have received it... shall be heirs of the celestial kingdom", "D&C", 137, "7-10", model.CanonDoctrineAndCovenants),
	ref("I saw a pillar of light exactly over my head, above the brightness of the sun", "Joseph Smith-History", 1, "15-20", model.CanonDoctrineAndCovenants),
	ref("The Lord shall utter his voice out of Zion, and speak out of Jerusalem", "D&C", 133, "37", model.CanonDoctrineAndCovenants),
}

var all = func() []model.Scripture {
	combined := make([]model.Scripture, 0,
		len(oldTestament)+len(newTestament)+len(bookOfMormon)+len(doctrineAndCovenants))
	combined = append(combined, oldTestament...)
	combined = append(combined, newTestament...)
	combined = append(combined, bookOfMormon...)
	combined = append(combined, doctrineAndCovenants...)
	return combined
}()

// All returns the full dataset in stable order
// (Old Testament, New Testament, Book of Mormon, Doctrine & Covenants).
// Callers must not mutate the returned slice.
func All() []model.Scripture {
	return all
}

// ByCanon returns the dataset partition for one canon.
// Callers must not mutate the returned slice.
func ByCanon(c model.Canon) []model.Scripture {
	switch c {
	case model.CanonOldTestament:
		return oldTestament
	case model.CanonNewTestament:
		return newTestament
	case model.CanonBookOfMormon:
		return bookOfMormon
	case model.CanonDoctrineAndCovenants:
		return doctrineAndCovenants
	}
	return nil
}

// Count returns the total dataset size
func Count() int {
	return len(all)
}
